package config

import "fmt"

type Config struct {
	LLM         LLMConfig         `yaml:"llm"`
	TTS         TTSConfig         `yaml:"tts"`
	Recognizer  RecognizerConfig  `yaml:"recognizer"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Paths       PathsConfig       `yaml:"paths"`
	Video       VideoConfig       `yaml:"video"`
	Server      ServerConfig      `yaml:"server"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type LLMConfig struct {
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"api_keys"`
}

type TTSConfig struct {
	BinaryPath string   `yaml:"binary_path"`
	Voices     []string `yaml:"voices"`
	Rate       string   `yaml:"rate"`
}

type RecognizerConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelPath  string `yaml:"model_path"`
	SampleRate int    `yaml:"sample_rate"`
}

type FFmpegConfig struct {
	Encoder        string `yaml:"encoder"`
	Preset         string `yaml:"preset"`
	ComposeTimeout int    `yaml:"compose_timeout_seconds"`
}

type PathsConfig struct {
	Templates string `yaml:"templates"`
	Music     string `yaml:"music"`
	Scripts   string `yaml:"scripts"`
	Audio     string `yaml:"audio"`
	Output    string `yaml:"output"`
	Reports   string `yaml:"reports"`
	Temp      string `yaml:"temp"`
	Inbox     string `yaml:"inbox"`
	Database  string `yaml:"database"`
	LogFile   string `yaml:"log_file"`
}

type VideoConfig struct {
	MinLength int `yaml:"min_length"`
	MaxLength int `yaml:"max_length"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

func (c *Config) Validate() error {
	if len(c.LLM.APIKeys) == 0 {
		return fmt.Errorf("llm.api_keys is required")
	}
	if c.Recognizer.BinaryPath == "" {
		return fmt.Errorf("recognizer.binary_path is required")
	}
	if c.Recognizer.ModelPath == "" {
		return fmt.Errorf("recognizer.model_path is required")
	}
	if c.Paths.Templates == "" {
		return fmt.Errorf("paths.templates is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	if c.LLM.Model == "" {
		c.LLM.Model = "gemini-2.5-flash"
	}
	if c.TTS.BinaryPath == "" {
		c.TTS.BinaryPath = "edge-tts"
	}
	if len(c.TTS.Voices) == 0 {
		c.TTS.Voices = []string{"en-US-AriaNeural", "en-US-JennyNeural", "en-US-GuyNeural"}
	}
	if c.TTS.Rate == "" {
		c.TTS.Rate = "+15%"
	}
	if c.Recognizer.SampleRate == 0 {
		c.Recognizer.SampleRate = 16000
	}
	if c.FFmpeg.Encoder == "" {
		c.FFmpeg.Encoder = "libx264"
	}
	if c.FFmpeg.Preset == "" {
		c.FFmpeg.Preset = "fast"
	}
	if c.FFmpeg.ComposeTimeout == 0 {
		c.FFmpeg.ComposeTimeout = 180
	}
	if c.Paths.Music == "" {
		c.Paths.Music = "data/music"
	}
	if c.Paths.Scripts == "" {
		c.Paths.Scripts = "data/scripts"
	}
	if c.Paths.Audio == "" {
		c.Paths.Audio = "data/audio"
	}
	if c.Paths.Reports == "" {
		c.Paths.Reports = "data/reports"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Paths.Inbox == "" {
		c.Paths.Inbox = "data/inbox"
	}
	if c.Paths.Database == "" {
		c.Paths.Database = "data/jobs.db"
	}
	if c.Video.MinLength == 0 {
		c.Video.MinLength = 30
	}
	if c.Video.MaxLength == 0 {
		c.Video.MaxLength = 90
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
