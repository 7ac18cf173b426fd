package config

// LayoutMode controls how wide the main content area is.
type LayoutMode string

const (
	LayoutWide     LayoutMode = "wide"
	LayoutCentered LayoutMode = "centered"
)

// Theme selects the page color scheme.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Config is the top-level mermaind configuration, corresponding to .mermaind.yml.
type Config struct {
	Page    PageConfig    `yaml:"page" koanf:"page"`
	Sidebar SidebarConfig `yaml:"sidebar" koanf:"sidebar"`
	Embed   EmbedConfig   `yaml:"embed" koanf:"embed"`
	Server  ServerConfig  `yaml:"server" koanf:"server"`
}

// PageConfig holds document-level settings.
type PageConfig struct {
	Title  string     `yaml:"title" koanf:"title"`
	Icon   string     `yaml:"icon" koanf:"icon"`
	Layout LayoutMode `yaml:"layout" koanf:"layout"`
	Theme  Theme      `yaml:"theme" koanf:"theme"`
}

// SidebarConfig describes the static sidebar. MarkdownFile, when set, takes
// precedence over Markdown and is resolved against the working directory.
type SidebarConfig struct {
	Image        string `yaml:"image" koanf:"image"`
	Heading      string `yaml:"heading" koanf:"heading"`
	Markdown     string `yaml:"markdown" koanf:"markdown"`
	MarkdownFile string `yaml:"markdown_file" koanf:"markdown_file"`
	Footer       string `yaml:"footer" koanf:"footer"`
}

// EmbedConfig describes the external application shown in the main area.
type EmbedConfig struct {
	URL           string   `yaml:"url" koanf:"url"`
	HideTopPx     int      `yaml:"hide_top_px" koanf:"hide_top_px"`
	HideBottomPx  int      `yaml:"hide_bottom_px" koanf:"hide_bottom_px"`
	Height        int      `yaml:"height" koanf:"height"`
	Breakpoint    int      `yaml:"breakpoint" koanf:"breakpoint"`
	MobileMessage []string `yaml:"mobile_message" koanf:"mobile_message"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port     int  `yaml:"port" koanf:"port"`
	AllowAll bool `yaml:"allow_all" koanf:"allow_all"`
}
