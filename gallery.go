package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/VICTORTBK/Portfolio/content"
	"github.com/VICTORTBK/Portfolio/log"
	"github.com/VICTORTBK/Portfolio/render"
)

var (
	galleryTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	gallerySelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	galleryDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	galleryTagStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("111"))
	modalBorderStyle     = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("213")).
				Padding(0, 1)
)

// galleryModel is the project list with tag filtering and a modal detail
// viewer rendered from each project's markdown.
type galleryModel struct {
	projects  []content.Project
	filters   []string // "all" plus each distinct tag
	filterIdx int
	cursor    int
	open      bool
	viewport  viewport.Model
	cache     *render.Cache
	width     int
	height    int
}

func newGalleryModel(c content.Content, cache *render.Cache) galleryModel {
	filters := append([]string{"all"}, c.Tags()...)
	return galleryModel{
		projects: c.Projects,
		filters:  filters,
		viewport: viewport.New(60, 20),
		cache:    cache,
	}
}

func (g *galleryModel) setSize(width, height int) {
	g.width = width
	g.height = height
	g.viewport.Width = min(width-6, 100)
	g.viewport.Height = max(height-8, 5)
}

// visible returns the projects matching the active tag filter.
func (g galleryModel) visible() []content.Project {
	filter := g.filters[g.filterIdx]
	if filter == "all" {
		return g.projects
	}
	var out []content.Project
	for _, p := range g.projects {
		for _, t := range p.Tags {
			if t == filter {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// cycleFilter advances to the next tag filter and clamps the cursor.
func (g *galleryModel) cycleFilter() {
	g.filterIdx = (g.filterIdx + 1) % len(g.filters)
	if n := len(g.visible()); g.cursor >= n {
		g.cursor = 0
	}
}

func (g galleryModel) Update(msg tea.Msg) (galleryModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return g, nil
	}

	if g.open {
		switch key.String() {
		case "esc", "enter", "q":
			g.open = false
			return g, nil
		}
		var cmd tea.Cmd
		g.viewport, cmd = g.viewport.Update(msg)
		return g, cmd
	}

	switch key.String() {
	case "up", "k":
		if g.cursor > 0 {
			g.cursor--
		}
	case "down", "j":
		if g.cursor < len(g.visible())-1 {
			g.cursor++
		}
	case "enter":
		g.openModal()
	}
	return g, nil
}

// openModal renders the selected project's markdown (cached by width) into
// the viewport.
func (g *galleryModel) openModal() {
	vis := g.visible()
	if g.cursor >= len(vis) {
		return
	}
	p := vis[g.cursor]
	src := p.Markdown
	if src == "" {
		src = "# " + p.Title + "\n\n" + p.Summary + "\n"
	}
	if p.Link != "" {
		src += "\n[" + p.Link + "](" + p.Link + ")\n"
	}
	body, err := g.cache.Markdown(p.Title, src, g.viewport.Width)
	if err != nil {
		log.Errorf("project render: %v", err)
		body = p.Summary
	}
	g.viewport.SetContent(body)
	g.viewport.GotoTop()
	g.open = true
}

func (g galleryModel) View() string {
	if g.open {
		return g.modalView()
	}
	return g.listView()
}

func (g galleryModel) listView() string {
	var b strings.Builder

	filter := g.filters[g.filterIdx]
	b.WriteString(galleryTitleStyle.Render("Projects"))
	b.WriteString(galleryDimStyle.Render(fmt.Sprintf("  [filter: %s]", filter)))
	b.WriteString("\n\n")

	vis := g.visible()
	if len(vis) == 0 {
		b.WriteString(galleryDimStyle.Render("no projects match this filter"))
	}
	for i, p := range vis {
		marker := "  "
		title := p.Title
		if i == g.cursor {
			marker = "> "
			title = gallerySelectedStyle.Render(title)
		}
		b.WriteString(marker + title)
		if len(p.Tags) > 0 {
			b.WriteString("  " + galleryTagStyle.Render("["+strings.Join(p.Tags, ", ")+"]"))
		}
		b.WriteString("\n")
		b.WriteString(galleryDimStyle.Render("    "+p.Summary) + "\n")
	}

	b.WriteString("\n" + galleryDimStyle.Render("enter open · f filter · j/k move"))
	return b.String()
}

func (g galleryModel) modalView() string {
	body := g.viewport.View()
	footer := galleryDimStyle.Render(fmt.Sprintf("%3.0f%% · esc close", g.viewport.ScrollPercent()*100))
	return modalBorderStyle.Render(body + "\n" + footer)
}
