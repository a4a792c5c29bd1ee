package core

// ProcessorConfig describes how a host drives the equalizer: the rate the
// bands are designed for, the number of interleaved channels, and the
// number of frames handed to each band per call.
type ProcessorConfig struct {
	SampleRate float64
	Channels   int
	BlockSize  int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns mono 48 kHz with 512-frame blocks.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 48000,
		Channels:   1,
		BlockSize:  512,
	}
}

// WithSampleRate sets the sample rate in Hz. Non-positive values are ignored.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithChannels sets the interleaved channel count. Values below 1 are ignored.
func WithChannels(channels int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if channels >= 1 {
			cfg.Channels = channels
		}
	}
}

// WithBlockSize sets the frames per block. Non-positive values are ignored.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Frames returns the number of whole frames in an interleaved buffer of
// n samples.
func (c ProcessorConfig) Frames(n int) int {
	if c.Channels < 1 {
		return 0
	}
	return n / c.Channels
}
