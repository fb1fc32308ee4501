package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/herdbook/internal/app"
	"github.com/alexanderramin/herdbook/internal/cli/formatter"
	"github.com/alexanderramin/herdbook/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

type birthWizardStage int

const (
	stageBirthHeader birthWizardStage = iota
	stageOffspring
	stageDone
)

type birthWizardKeys struct {
	Next   key.Binding
	Cancel key.Binding
}

func (k birthWizardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Cancel}
}

func (k birthWizardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type birthHeaderFields struct {
	date    string
	problem string
	notes   string
}

type offspringFields struct {
	sex       string
	weight    string
	vigor     string
	condition string
	notes     string
	more      bool
}

// birthWizard collects a birth form one newborn at a time. Nothing is
// written until the wizard finishes; Esc discards everything entered.
type birthWizard struct {
	form      *huh.Form
	stage     birthWizardStage
	dam       string
	header    birthHeaderFields
	current   offspringFields
	offspring []domain.OffspringInput
	cancelled bool

	keys birthWizardKeys
	help help.Model
}

func newBirthWizard(dam string, today time.Time) *birthWizard {
	w := &birthWizard{
		dam:    dam,
		header: birthHeaderFields{date: today.Format(domain.DateLayout), problem: string(domain.CalvingNone)},
		keys: birthWizardKeys{
			Next:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
			Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "discard")),
		},
		help: help.New(),
	}
	w.form = w.headerForm()
	return w
}

func (w *birthWizard) headerForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Birth date").
				Placeholder(domain.DateLayout).
				Value(&w.header.date).
				Validate(validateDate),
			huh.NewSelect[string]().
				Title("Calving problem").
				Options(enumOptions(
					domain.CalvingNone, domain.CalvingAssisted, domain.CalvingMalpresentation,
					domain.CalvingDystocia, domain.CalvingCaesarean, domain.CalvingRetainedPlacenta,
				)...).
				Value(&w.header.problem),
			huh.NewInput().
				Title("Calving notes (optional)").
				Value(&w.header.notes),
		),
	).WithTheme(herdbookHuhTheme()).WithShowHelp(false)
}

func (w *birthWizard) offspringForm() *huh.Form {
	w.current = offspringFields{sex: string(domain.SexFemale), vigor: string(domain.VigorStrong), condition: "normal"}
	n := len(w.offspring) + 1
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(fmt.Sprintf("Newborn #%d sex", n)).
				Options(enumOptions(domain.SexFemale, domain.SexMale)...).
				Value(&w.current.sex),
			huh.NewInput().
				Title("Birth weight (kg)").
				Value(&w.current.weight).
				Validate(validatePositiveFloat),
			huh.NewSelect[string]().
				Title("Vigor").
				Options(enumOptions(domain.VigorStrong, domain.VigorModerate, domain.VigorWeak, domain.VigorVeryWeak)...).
				Value(&w.current.vigor),
			huh.NewInput().
				Title("Condition").
				Value(&w.current.condition),
			huh.NewInput().
				Title("Notes (optional)").
				Value(&w.current.notes),
			huh.NewConfirm().
				Title("Another newborn?").
				Affirmative("Yes").
				Negative("No").
				Value(&w.current.more),
		),
	).WithTheme(herdbookHuhTheme()).WithShowHelp(false)
}

func (w *birthWizard) Init() tea.Cmd {
	return w.form.Init()
}

func (w *birthWizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, w.keys.Cancel), keyMsg.Type == tea.KeyCtrlC:
			w.cancelled = true
			return w, tea.Quit
		}
	}

	form, cmd := w.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.form = f
	}
	switch w.form.State {
	case huh.StateCompleted:
		return w, tea.Batch(cmd, w.advance())
	case huh.StateAborted:
		w.cancelled = true
		return w, tea.Quit
	}
	return w, cmd
}

// advance moves past the completed form: header, then one form per newborn
// until the user answers no to "Another newborn?".
func (w *birthWizard) advance() tea.Cmd {
	switch w.stage {
	case stageBirthHeader:
		w.stage = stageOffspring
	case stageOffspring:
		w.offspring = append(w.offspring, w.current.input())
		if !w.current.more {
			w.stage = stageDone
			return tea.Quit
		}
	default:
		return tea.Quit
	}
	w.form = w.offspringForm()
	return w.form.Init()
}

func (w *birthWizard) View() string {
	if w.stage == stageDone || w.cancelled {
		return ""
	}
	title := formatter.StyleHeader.Render("Record birth for " + w.dam)
	return title + "\n\n" + w.form.View() + "\n" + w.help.View(w.keys)
}

func (f offspringFields) input() domain.OffspringInput {
	weight, _ := strconv.ParseFloat(strings.TrimSpace(f.weight), 64)
	return domain.OffspringInput{
		Sex:           domain.Sex(f.sex),
		BirthWeightKg: weight,
		Vigor:         domain.Vigor(f.vigor),
		Condition:     strings.TrimSpace(f.condition),
		Notes:         strings.TrimSpace(f.notes),
	}
}

// request builds the birth request from a finished wizard.
func (w *birthWizard) request(pregnancyID string) (app.RecordBirthRequest, error) {
	born, err := domain.ParseDate(w.header.date)
	if err != nil {
		return app.RecordBirthRequest{}, fmt.Errorf("birth date %q: use YYYY-MM-DD", w.header.date)
	}
	return app.RecordBirthRequest{
		PregnancyID: pregnancyID,
		BirthDate:   born,
		Offspring:   w.offspring,
		Calving: domain.CalvingMeta{
			Problem: domain.CalvingProblem(w.header.problem),
			Notes:   strings.TrimSpace(w.header.notes),
		},
	}, nil
}

func (w *birthWizard) finished() bool {
	return w.stage == stageDone && !w.cancelled
}
