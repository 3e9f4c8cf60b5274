package config

// File is the structure of snapsync.yaml. Unset fields keep their defaults.
type File struct {
	Remote *RemoteDTO `yaml:"remote"`
	Cache  *CacheDTO  `yaml:"cache"`
	Sync   *SyncDTO   `yaml:"sync"`
	Serve  *ServeDTO  `yaml:"serve"`
	Log    *LogDTO    `yaml:"log"`
}

// RemoteDTO is the remote section.
type RemoteDTO struct {
	Address         *string `yaml:"address"`
	Timeout         *string `yaml:"timeout"`
	MaxBatchSize    *int    `yaml:"max_batch_size"`
	MaxMessageBytes *int    `yaml:"max_message_bytes"`
}

// CacheDTO is the cache section.
type CacheDTO struct {
	Dir *string `yaml:"dir"`
}

// SyncDTO is the sync section.
type SyncDTO struct {
	ProjectParallelism *int  `yaml:"project_parallelism"`
	DocumentContents   *bool `yaml:"document_contents"`
}

// ServeDTO is the serve section.
type ServeDTO struct {
	Listen          *string `yaml:"listen"`
	Store           *string `yaml:"store"`
	IdleTimeout     *string `yaml:"idle_timeout"`
	MaxMessageBytes *int    `yaml:"max_message_bytes"`
}

// LogDTO is the log section.
type LogDTO struct {
	JSON  *bool `yaml:"json"`
	Debug *bool `yaml:"debug"`
}
