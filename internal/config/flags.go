package config

import "flag"

// flagValues holds the command-line overrides bound by BindFlags.
type flagValues struct {
	config      *string
	debug       *bool
	mayaVersion *string
	units       *string
	fps         *float64
	texturePath *string
	output      *string
}

var flags flagValues

// BindFlags registers the config flags on fs. Call it before fs.Parse.
func BindFlags(fs *flag.FlagSet) {
	flags = flagValues{
		config:      fs.String("config", "", "Path to config file (.yaml or .toml)"),
		debug:       fs.Bool("debug", false, "Enable debug logging"),
		mayaVersion: fs.String("maya-version", "", "Target Maya version"),
		units:       fs.String("units", "", "Linear unit: meter or centimeter"),
		fps:         fs.Float64("fps", 0, "Frame rate override"),
		texturePath: fs.String("texture-path", "", "Prefix for file texture paths"),
		output:      fs.String("o", "", "Output .ma file"),
	}
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	if flags.config == nil {
		return ""
	}
	return *flags.config
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if flags.debug != nil && *flags.debug {
		cfg.Logging.Level = "debug"
	}
	if flags.mayaVersion != nil && *flags.mayaVersion != "" {
		cfg.Export.MayaVersion = *flags.mayaVersion
	}
	if flags.units != nil && *flags.units != "" {
		cfg.Export.LinearUnit = *flags.units
	}
	if flags.fps != nil && *flags.fps > 0 {
		cfg.Export.FrameRate = float32(*flags.fps)
	}
	if flags.texturePath != nil && *flags.texturePath != "" {
		cfg.Export.TexturePath = *flags.texturePath
	}
	if flags.output != nil && *flags.output != "" {
		cfg.Export.Output = *flags.output
	}
}
