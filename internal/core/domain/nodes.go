package domain

// ObjectKind identifies the shape of an object stored under a checksum.
type ObjectKind uint8

const (
	// KindBlob is a leaf object carrying opaque bytes.
	KindBlob ObjectKind = iota + 1
	// KindSolution is the root node of a solution snapshot.
	KindSolution
	// KindProject is a per-project node listing document checksums.
	KindProject
	// KindChildren is a generic node carrying child references.
	KindChildren
)

// String returns the wire name of the kind.
func (k ObjectKind) String() string {
	switch k {
	case KindBlob:
		return "blob"
	case KindSolution:
		return "solution"
	case KindProject:
		return "project"
	case KindChildren:
		return "children"
	default:
		return "unknown"
	}
}

// Object is anything that can be stored under a checksum.
// Objects are immutable once constructed.
type Object interface {
	Kind() ObjectKind
}

// RefKind identifies the variant of a ChildRef.
type RefKind uint8

const (
	// RefChecksum is a bare checksum reference.
	RefChecksum RefKind = iota + 1
	// RefCollection is a nested collection of references.
	RefCollection
)

// ChildRef is one entry of a node's children: either a Checksum or a
// ChecksumCollection. No other implementations are expected; consumers treat
// anything else as a protocol violation.
type ChildRef interface {
	RefKind() RefKind
}

// ChecksumCollection is an ordered group of references forming a single children edge.
// Collections may nest.
type ChecksumCollection []ChildRef

// NewChecksumCollection builds a flat collection from checksums.
func NewChecksumCollection(checksums ...Checksum) ChecksumCollection {
	c := make(ChecksumCollection, len(checksums))
	for i, cs := range checksums {
		c[i] = cs
	}
	return c
}

// RefKind implements ChildRef.
func (ChecksumCollection) RefKind() RefKind {
	return RefCollection
}

// SolutionNode is the root of a solution snapshot.
type SolutionNode struct {
	// Children is the direct substructure of the solution (info, options).
	Children []ChildRef
	// Projects holds one checksum per project.
	Projects []Checksum
}

// Kind implements Object.
func (*SolutionNode) Kind() ObjectKind { return KindSolution }

// ProjectNode lists the checksums of a project's document nodes per category.
type ProjectNode struct {
	Documents               []Checksum
	AdditionalDocuments     []Checksum
	AnalyzerConfigDocuments []Checksum
}

// Kind implements Object.
func (*ProjectNode) Kind() ObjectKind { return KindProject }

// ChildNode is a generic checksum-with-children node, used below the project layer.
type ChildNode struct {
	Children []ChildRef
}

// Kind implements Object.
func (*ChildNode) Kind() ObjectKind { return KindChildren }

// Blob is a leaf object.
type Blob struct {
	Data []byte
}

// Kind implements Object.
func (*Blob) Kind() ObjectKind { return KindBlob }
