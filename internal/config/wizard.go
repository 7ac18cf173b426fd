package config

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and saves the result
// to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to mermaind! Let's configure the embedded page.")
	fmt.Println()

	cfg := DefaultConfig()

	titlePrompt := promptui.Prompt{
		Label:   "Page title",
		Default: cfg.Page.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("page title: %w", err)
	}
	cfg.Page.Title = title

	themePrompt := promptui.Select{
		Label: "Select theme",
		Items: []string{string(ThemeDark), string(ThemeLight)},
	}
	_, theme, err := themePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("theme selection: %w", err)
	}
	cfg.Page.Theme = Theme(theme)

	urlPrompt := promptui.Prompt{
		Label:    "URL of the application to embed",
		Default:  cfg.Embed.URL,
		Validate: validateURL,
	}
	embedURL, err := urlPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("embed url: %w", err)
	}
	cfg.Embed.URL = embedURL

	if cfg.Embed.HideTopPx, err = promptInt("Pixels to hide at the top of the embedded page", cfg.Embed.HideTopPx); err != nil {
		return nil, fmt.Errorf("hide top: %w", err)
	}
	if cfg.Embed.HideBottomPx, err = promptInt("Pixels to hide at the bottom (negative shrinks the frame)", cfg.Embed.HideBottomPx); err != nil {
		return nil, fmt.Errorf("hide bottom: %w", err)
	}
	if cfg.Embed.Height, err = promptInt("Visible frame height in pixels", cfg.Embed.Height); err != nil {
		return nil, fmt.Errorf("height: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func promptInt(label string, def int) (int, error) {
	p := promptui.Prompt{
		Label:   label,
		Default: strconv.Itoa(def),
		Validate: func(s string) error {
			_, err := strconv.Atoi(s)
			return err
		},
	}
	s, err := p.Run()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(s)
}

func validateURL(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("must be an absolute http(s) URL")
	}
	return nil
}
