// Package tui holds the interactive document watcher. Parsing happens
// server-side, so the watcher is a read-only poller over the documents
// service.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
	"github.com/everettroeth/vitalis-sub000/internal/ports"
)

// WatchDeps carries everything the watcher needs. Interval defaults to
// three seconds when zero.
type WatchDeps struct {
	Documents ports.DocumentsService
	Interval  time.Duration
}

type pollTickMsg struct{}

type docFetchedMsg struct {
	doc domain.Document
	err error
}

type watchModel struct {
	theme Theme
	deps  WatchDeps

	docID   string
	spin    spinner.Model
	doc     domain.Document
	fetched bool
	err     error
	done    bool
}

// Watch polls one document until its parse status is terminal or the
// user quits.
func Watch(deps WatchDeps, documentID string) error {
	if deps.Interval <= 0 {
		deps.Interval = 3 * time.Second
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := watchModel{
		theme: DefaultTheme(),
		deps:  deps,
		docID: documentID,
		spin:  sp,
	}

	p := tea.NewProgram(m)
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(watchModel); ok && fm.err != nil {
		return fm.err
	}
	return nil
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.fetch())
}

func (m watchModel) fetch() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		doc, err := m.deps.Documents.Get(ctx, m.docID)
		return docFetchedMsg{doc: doc, err: err}
	}
}

func (m watchModel) schedule() tea.Cmd {
	return tea.Tick(m.deps.Interval, func(time.Time) tea.Msg {
		return pollTickMsg{}
	})
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}
		return m, nil

	case pollTickMsg:
		if m.done {
			return m, nil
		}
		return m, m.fetch()

	case docFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.done = true
			return m, tea.Quit
		}
		m.doc = msg.doc
		m.fetched = true
		if m.doc.ParseStatus.Terminal() {
			m.done = true
			return m, tea.Quit
		}
		return m, m.schedule()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m watchModel) View() string {
	header := m.theme.Title.Render("Vitalis — document watch") + "\n"

	if m.err != nil {
		return header + m.theme.Card.Render(m.theme.Bad.Render("error: "+m.err.Error())) + "\n"
	}

	if !m.fetched {
		return header + m.theme.Card.Render(m.spin.View()+" fetching "+m.docID) + "\n"
	}

	status := m.statusLine()
	body := fmt.Sprintf("%s\nuploaded %s\n\n%s",
		m.theme.Title.Render(m.doc.Filename),
		m.doc.UploadedAt.Format(time.RFC3339),
		status,
	)

	out := header + m.theme.Card.Render(body)
	if !m.done {
		out += "\n" + m.theme.Help.Render("q quit")
	}
	return out + "\n"
}

func (m watchModel) statusLine() string {
	switch m.doc.ParseStatus {
	case domain.ParseCompleted:
		return m.theme.Good.Render("✓ parsed")
	case domain.ParseFailed:
		detail := ""
		if m.doc.ParseError != nil {
			detail = ": " + *m.doc.ParseError
		}
		return m.theme.Bad.Render("✗ parse failed" + detail)
	case domain.ParseAwaitingConfirmation:
		return m.theme.Warn.Render("awaiting confirmation")
	default:
		return m.spin.View() + " " + string(m.doc.ParseStatus)
	}
}
