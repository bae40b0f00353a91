package content

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ResolvePath picks the config file location. Priority: explicit flag path,
// then $PORTFOLIO_CONFIG, then portfolio.yaml under the XDG config dir.
func ResolvePath(flagPath string) (string, error) {
	if flagPath != "" {
		return absolutize(flagPath)
	}
	if envPath := os.Getenv("PORTFOLIO_CONFIG"); envPath != "" {
		return absolutize(envPath)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	return filepath.Join(xdgConfig, "portfolio", "portfolio.yaml"), nil
}

func absolutize(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, path), nil
}

// Load reads the portfolio from path, filling anything missing from the
// built-in defaults. A missing file is not an error: the defaults are
// returned as-is.
func Load(path string) (Content, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || os.IsNotExist(err) {
			return Default(), nil
		}
		return Content{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var c Content
	if err := v.Unmarshal(&c); err != nil {
		return Content{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Content{}, err
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("name", def.Name)
	v.SetDefault("tagline", def.Tagline)
	v.SetDefault("roles", def.Roles)
	v.SetDefault("about", def.AboutLines)
	v.SetDefault("contact.email", def.Contact.Email)
	v.SetDefault("contact.github", def.Contact.GitHub)

	// Projects do not merge element-wise; a config either lists its own or
	// inherits the full default set.
	projects := make([]map[string]any, len(def.Projects))
	for i, p := range def.Projects {
		projects[i] = map[string]any{
			"title":    p.Title,
			"tags":     p.Tags,
			"summary":  p.Summary,
			"markdown": p.Markdown,
			"link":     p.Link,
		}
	}
	v.SetDefault("projects", projects)
}
