// Package codec implements the canonical JSON encoding of checksum graph objects.
package codec

import (
	"encoding/json"
	"fmt"

	"go.trai.ch/snapsync/internal/core/domain"
	"go.trai.ch/zerr"
)

// JSON implements ports.Codec. Encodings are deterministic: struct fields are emitted in
// declaration order and slices keep their order, so equal objects hash to equal checksums.
type JSON struct{}

// New creates a JSON codec.
func New() *JSON {
	return &JSON{}
}

type envelope struct {
	Kind                    string            `json:"kind"`
	Children                []json.RawMessage `json:"children,omitempty"`
	Projects                []domain.Checksum `json:"projects,omitempty"`
	Documents               []domain.Checksum `json:"documents,omitempty"`
	AdditionalDocuments     []domain.Checksum `json:"additional_documents,omitempty"`
	AnalyzerConfigDocuments []domain.Checksum `json:"analyzer_config_documents,omitempty"`
	Data                    []byte            `json:"data,omitempty"`
}

// Encode returns the canonical encoding of obj.
func (c *JSON) Encode(obj domain.Object) ([]byte, error) {
	if obj == nil {
		return nil, zerr.Wrap(domain.ErrObjectEncodeFailed, "object is nil")
	}

	env := envelope{Kind: obj.Kind().String()}
	switch o := obj.(type) {
	case *domain.SolutionNode:
		children, err := encodeRefs(o.Children)
		if err != nil {
			return nil, err
		}
		env.Children = children
		env.Projects = o.Projects
	case *domain.ProjectNode:
		env.Documents = o.Documents
		env.AdditionalDocuments = o.AdditionalDocuments
		env.AnalyzerConfigDocuments = o.AnalyzerConfigDocuments
	case *domain.ChildNode:
		children, err := encodeRefs(o.Children)
		if err != nil {
			return nil, err
		}
		env.Children = children
	case *domain.Blob:
		env.Data = o.Data
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownObjectKind, "cannot encode object"), "type", fmt.Sprintf("%T", obj))
	}

	data, err := json.Marshal(env)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrObjectEncodeFailed.Error())
	}
	return data, nil
}

// Decode parses an encoding produced by Encode.
func (c *JSON) Decode(data []byte) (domain.Object, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, zerr.Wrap(err, domain.ErrObjectDecodeFailed.Error())
	}

	switch env.Kind {
	case domain.KindSolution.String():
		children, err := decodeRefs(env.Children)
		if err != nil {
			return nil, err
		}
		return &domain.SolutionNode{Children: children, Projects: env.Projects}, nil
	case domain.KindProject.String():
		return &domain.ProjectNode{
			Documents:               env.Documents,
			AdditionalDocuments:     env.AdditionalDocuments,
			AnalyzerConfigDocuments: env.AnalyzerConfigDocuments,
		}, nil
	case domain.KindChildren.String():
		children, err := decodeRefs(env.Children)
		if err != nil {
			return nil, err
		}
		return &domain.ChildNode{Children: children}, nil
	case domain.KindBlob.String():
		if env.Data == nil {
			env.Data = []byte{}
		}
		return &domain.Blob{Data: env.Data}, nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownObjectKind, "cannot decode object"), "kind", env.Kind)
	}
}

// Checksum returns the checksum of obj's canonical encoding together with the encoding.
func (c *JSON) Checksum(obj domain.Object) (domain.Checksum, []byte, error) {
	data, err := c.Encode(obj)
	if err != nil {
		return domain.NullChecksum, nil, err
	}
	return domain.ChecksumOf(data), data, nil
}

// encodeRefs encodes each reference as a hex string or, for collections, a nested array.
func encodeRefs(refs []domain.ChildRef) ([]json.RawMessage, error) {
	out := make([]json.RawMessage, 0, len(refs))
	for _, ref := range refs {
		raw, err := encodeRef(ref)
		if err != nil {
			return nil, err
		}
		out = append(out, raw)
	}
	return out, nil
}

func encodeRef(ref domain.ChildRef) (json.RawMessage, error) {
	switch r := ref.(type) {
	case domain.Checksum:
		return json.Marshal(r)
	case domain.ChecksumCollection:
		inner, err := encodeRefs(r)
		if err != nil {
			return nil, err
		}
		return json.Marshal(inner)
	default:
		return nil, zerr.With(
			zerr.Wrap(domain.ErrUnexpectedChildRef, "cannot encode child reference"),
			"type", fmt.Sprintf("%T", ref),
		)
	}
}

func decodeRefs(raws []json.RawMessage) ([]domain.ChildRef, error) {
	if len(raws) == 0 {
		return nil, nil
	}
	out := make([]domain.ChildRef, 0, len(raws))
	for _, raw := range raws {
		ref, err := decodeRef(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, ref)
	}
	return out, nil
}

func decodeRef(raw json.RawMessage) (domain.ChildRef, error) {
	var c domain.Checksum
	if err := json.Unmarshal(raw, &c); err == nil {
		return c, nil
	}

	var nested []json.RawMessage
	if err := json.Unmarshal(raw, &nested); err != nil {
		return nil, zerr.With(
			zerr.Wrap(domain.ErrObjectDecodeFailed, "child reference is neither a checksum nor a collection"),
			"value", string(raw),
		)
	}
	refs, err := decodeRefs(nested)
	if err != nil {
		return nil, err
	}
	collection := make(domain.ChecksumCollection, len(refs))
	copy(collection, refs)
	return collection, nil
}
