// Package content holds the portfolio data displayed by the TUI and loads
// it from an optional YAML file.
package content

import "fmt"

type Project struct {
	Title    string   `mapstructure:"title"`
	Tags     []string `mapstructure:"tags"`
	Summary  string   `mapstructure:"summary"`
	Markdown string   `mapstructure:"markdown"`
	Link     string   `mapstructure:"link"`
}

type Contact struct {
	Email    string `mapstructure:"email"`
	GitHub   string `mapstructure:"github"`
	LinkedIn string `mapstructure:"linkedin"`
}

type Content struct {
	Name       string    `mapstructure:"name"`
	Tagline    string    `mapstructure:"tagline"`
	Roles      []string  `mapstructure:"roles"`
	AboutLines []string  `mapstructure:"about"`
	Projects   []Project `mapstructure:"projects"`
	Contact    Contact   `mapstructure:"contact"`
}

// Validate rejects content the TUI cannot meaningfully display.
func (c Content) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("content: name is required")
	}
	if len(c.Roles) == 0 {
		return fmt.Errorf("content: at least one role is required")
	}
	if len(c.Projects) == 0 {
		return fmt.Errorf("content: at least one project is required")
	}
	for i, p := range c.Projects {
		if p.Title == "" {
			return fmt.Errorf("content: project %d has no title", i)
		}
	}
	return nil
}

// Tags returns the distinct project tags in first-seen order.
func (c Content) Tags() []string {
	seen := map[string]bool{}
	var tags []string
	for _, p := range c.Projects {
		for _, t := range p.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	return tags
}

// Default is the built-in portfolio shown when no config file exists.
func Default() Content {
	return Content{
		Name:    "Victor",
		Tagline: "I build things for the terminal and the web.",
		Roles: []string{
			"Software Engineer",
			"Backend Developer",
			"Open Source Contributor",
		},
		AboutLines: []string{
			"I love building software that is both useful and fun,",
			"and I am always curious about how things work behind the scenes.",
			"Most of my projects start with a simple idea and turn into",
			"a chance to learn something new.",
		},
		Projects: []Project{
			{
				Title:   "termmail",
				Tags:    []string{"go", "tui"},
				Summary: "A terminal email client with fuzzy search.",
				Markdown: "# termmail\n\nA terminal-based email client built in Go " +
					"with fuzzy-finder capabilities, using the Charm TUI stack and go-imap.\n",
				Link: "https://github.com/VICTORTBK/termmail",
			},
			{
				Title:   "tunestream",
				Tags:    []string{"go", "tui", "audio"},
				Summary: "Stream music from the command line.",
				Markdown: "# tunestream\n\nA terminal music streaming application with " +
					"an elegant TUI, leveraging yt-dlp and mpv for playback straight from the shell.\n",
				Link: "https://github.com/VICTORTBK/tunestream",
			},
			{
				Title:   "gamerec",
				Tags:    []string{"python", "ml"},
				Summary: "Content-based game recommendations.",
				Markdown: "# gamerec\n\nA machine-learning powered web application that uses " +
					"TF-IDF vectorization and cosine similarity to recommend games, with " +
					"interactive visualizations and real-time filtering.\n",
				Link: "https://github.com/VICTORTBK/gamerec",
			},
		},
		Contact: Contact{
			Email:  "hello@victortbk.dev",
			GitHub: "https://github.com/VICTORTBK",
		},
	}
}
