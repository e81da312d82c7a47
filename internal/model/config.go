package model

type Config struct {
	DataDir string `yaml:"data_dir"`
	Notify  struct {
		Interval int `yaml:"interval"` // seconds between poller scans
	} `yaml:"notify"`
	Week struct {
		DayStart int `yaml:"day_start"` // first hour shown in the grid
		DayEnd   int `yaml:"day_end"`   // last hour shown (exclusive)
	} `yaml:"week"`
	Sync struct {
		Enable     bool   `yaml:"enable"`
		Platform   string `yaml:"platform"`
		Bucket     string `yaml:"bucket"`
		AWSProfile string `yaml:"aws_profile"`
		AWSRegion  string `yaml:"aws_region"`
	} `yaml:"sync"`
}

func DefaultConfig() Config {
	var config Config
	config.DataDir = "~/.config/remind/data"
	config.Notify.Interval = 60
	config.Week.DayStart = 6
	config.Week.DayEnd = 22
	config.Sync.Platform = "aws"
	return config
}
