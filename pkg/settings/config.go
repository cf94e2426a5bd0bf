package settings

type Config struct {
	Logger Logger `mapstructure:"logger" yaml:"logger"`
	Tree   Tree   `mapstructure:"tree" yaml:"tree"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" yaml:"log_level" validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
	FileLogName string `mapstructure:"file_log_name" yaml:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups" validate:"gte=0"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age" validate:"gte=0"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size" validate:"gte=0"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// Tree is the configuration for the tree driver
type Tree struct {
	Preload  int    `mapstructure:"preload" yaml:"preload" validate:"gte=0"` // Keys 0..Preload-1
	Value    string `mapstructure:"value" yaml:"value"`                      // Value bound to preloaded keys
	Workers  int    `mapstructure:"workers" yaml:"workers" validate:"gte=1"` // Concurrent preload writers
	Validate bool   `mapstructure:"validate" yaml:"validate"`                // Check invariants before dumping
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Logger: Logger{
			LogLevel: "info",
		},
		Tree: Tree{
			Preload: 50,
			Value:   "hello",
			Workers: 1,
		},
	}
}
