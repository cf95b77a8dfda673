package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Viewport   ViewportConfig   `mapstructure:"viewport"`
	Reveal     RevealConfig     `mapstructure:"reveal"`
	Nav        NavConfig        `mapstructure:"nav"`
	Navbar     NavbarConfig     `mapstructure:"navbar"`
	Buttons    ButtonConfig     `mapstructure:"buttons"`
	LazyImages LazyImagesConfig `mapstructure:"lazy_images"`
	Layout     LayoutConfig     `mapstructure:"layout"`
	Log        LogConfig        `mapstructure:"log"`
}

type ViewportConfig struct {
	Height float64 `mapstructure:"height" validate:"gt=0"`
}

// RevealConfig drives the scroll-reveal controller.
type RevealConfig struct {
	Selectors  []string `mapstructure:"selectors" validate:"min=1,dive,required"`
	Threshold  float64  `mapstructure:"threshold" validate:"gte=0,lte=1"`
	RootMargin string   `mapstructure:"root_margin" validate:"required"`

	// Strategy is "keyframe" (CSS animation) or "transition" (inline
	// opacity/transform transition).
	Strategy  string  `mapstructure:"strategy" validate:"oneof=keyframe transition"`
	Animation string  `mapstructure:"animation"`
	OffsetPx  float64 `mapstructure:"offset_px" validate:"gte=0"`
	Duration  string  `mapstructure:"duration"`
}

type NavConfig struct {
	SectionSelector string  `mapstructure:"section_selector" validate:"required"`
	LinkSelector    string  `mapstructure:"link_selector" validate:"required"`
	AnchorSelector  string  `mapstructure:"anchor_selector" validate:"required"`
	ThresholdPx     float64 `mapstructure:"threshold_px" validate:"gte=0"`
	ActiveOpacity   string  `mapstructure:"active_opacity" validate:"required"`
	InactiveOpacity string  `mapstructure:"inactive_opacity" validate:"required"`
	MenuSelector    string  `mapstructure:"menu_selector"`
}

type NavbarConfig struct {
	Selector       string  `mapstructure:"selector"`
	ShadowOffset   float64 `mapstructure:"shadow_offset" validate:"gte=0"`
	ScrolledShadow string  `mapstructure:"scrolled_shadow"`
	RestingShadow  string  `mapstructure:"resting_shadow"`
}

type ButtonConfig struct {
	Selector       string `mapstructure:"selector"`
	HoverTransform string `mapstructure:"hover_transform"`
	RestTransform  string `mapstructure:"rest_transform"`
}

type LazyImagesConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Selector string `mapstructure:"selector" validate:"required_if=Enabled true"`
}

type LayoutConfig struct {
	LineHeight   float64 `mapstructure:"line_height" validate:"gt=0"`
	CharsPerLine int     `mapstructure:"chars_per_line" validate:"gt=0"`
	BlockGap     float64 `mapstructure:"block_gap" validate:"gte=0"`
	ImageHeight  float64 `mapstructure:"image_height" validate:"gt=0"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json text"`
}

// Default returns the settings of the stock portfolio page.
func Default() Config {
	return Config{
		Viewport: ViewportConfig{Height: 900},
		Reveal: RevealConfig{
			Selectors: []string{
				".project-card", ".skill-category", ".contact-card",
				".service-card", ".about-card", ".reveal",
			},
			Threshold:  0.1,
			RootMargin: "0px 0px -100px 0px",
			Strategy:   "keyframe",
			Animation:  "slideInDown 0.6s ease forwards",
			OffsetPx:   30,
			Duration:   "0.6s",
		},
		Nav: NavConfig{
			SectionSelector: "section[id]",
			LinkSelector:    ".nav-menu a",
			AnchorSelector:  `a[href^="#"]`,
			ThresholdPx:     200,
			ActiveOpacity:   "1",
			InactiveOpacity: "0.6",
			MenuSelector:    ".nav-menu",
		},
		Navbar: NavbarConfig{
			Selector:       ".navbar",
			ShadowOffset:   100,
			ScrolledShadow: "0 4px 15px rgba(0,0,0,0.2)",
			RestingShadow:  "0 2px 10px rgba(0,0,0,0.1)",
		},
		Buttons: ButtonConfig{
			Selector:       ".btn",
			HoverTransform: "translateY(-3px)",
			RestTransform:  "translateY(0)",
		},
		LazyImages: LazyImagesConfig{
			Enabled:  true,
			Selector: "img[data-src]",
		},
		Layout: LayoutConfig{
			LineHeight:   24,
			CharsPerLine: 90,
			BlockGap:     16,
			ImageHeight:  240,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from defaults, an optional YAML file and
// SITEFX_* environment variables, in increasing priority. With an empty
// cfgFile, ./sitefx.yaml is used if present.
func Load(cfgFile string) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix("SITEFX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("sitefx")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("viewport.height", d.Viewport.Height)

	v.SetDefault("reveal.selectors", d.Reveal.Selectors)
	v.SetDefault("reveal.threshold", d.Reveal.Threshold)
	v.SetDefault("reveal.root_margin", d.Reveal.RootMargin)
	v.SetDefault("reveal.strategy", d.Reveal.Strategy)
	v.SetDefault("reveal.animation", d.Reveal.Animation)
	v.SetDefault("reveal.offset_px", d.Reveal.OffsetPx)
	v.SetDefault("reveal.duration", d.Reveal.Duration)

	v.SetDefault("nav.section_selector", d.Nav.SectionSelector)
	v.SetDefault("nav.link_selector", d.Nav.LinkSelector)
	v.SetDefault("nav.anchor_selector", d.Nav.AnchorSelector)
	v.SetDefault("nav.threshold_px", d.Nav.ThresholdPx)
	v.SetDefault("nav.active_opacity", d.Nav.ActiveOpacity)
	v.SetDefault("nav.inactive_opacity", d.Nav.InactiveOpacity)
	v.SetDefault("nav.menu_selector", d.Nav.MenuSelector)

	v.SetDefault("navbar.selector", d.Navbar.Selector)
	v.SetDefault("navbar.shadow_offset", d.Navbar.ShadowOffset)
	v.SetDefault("navbar.scrolled_shadow", d.Navbar.ScrolledShadow)
	v.SetDefault("navbar.resting_shadow", d.Navbar.RestingShadow)

	v.SetDefault("buttons.selector", d.Buttons.Selector)
	v.SetDefault("buttons.hover_transform", d.Buttons.HoverTransform)
	v.SetDefault("buttons.rest_transform", d.Buttons.RestTransform)

	v.SetDefault("lazy_images.enabled", d.LazyImages.Enabled)
	v.SetDefault("lazy_images.selector", d.LazyImages.Selector)

	v.SetDefault("layout.line_height", d.Layout.LineHeight)
	v.SetDefault("layout.chars_per_line", d.Layout.CharsPerLine)
	v.SetDefault("layout.block_gap", d.Layout.BlockGap)
	v.SetDefault("layout.image_height", d.Layout.ImageHeight)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// Validate checks field ranges and enumerations.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
