package services

import (
	"bytes"
	"encoding/xml"
	"errors"
	"strings"
	"text/template"

	"github.com/jmoiron/sqlx"

	"shelfwise/internal/repos"
)

const (
	KindAnnouncements = "announcements"
	KindEvents        = "events"
)

var ErrUnknownKind = errors.New("unknown invitation type")

// Card is the editable content of an invitation.
type Card struct {
	Kind      string
	Template  int
	Title     string
	Tagline   string
	Subfamily string
	Date      string
	Time      string
	Location  string
	Host      string
	Agenda    string
}

// FileName is the download name for the rendered card.
func (c Card) FileName() string {
	name := strings.TrimSpace(c.Title)
	if name == "" {
		name = "Invitation"
	}
	return name + ".svg"
}

func (c Card) AgendaLines() []string {
	var out []string
	for _, l := range strings.Split(c.Agenda, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
		if len(out) == maxAgendaLines {
			break
		}
	}
	return out
}

type InvitationService struct {
	repo *repos.InvitationRepo
}

func NewInvitationService(db *sqlx.DB) *InvitationService {
	return &InvitationService{repo: repos.NewInvitationRepo(db)}
}

// Defaults returns the starting card for kind. Announcements use template 1, everything else template 2.
func Defaults(kind string) (Card, error) {
	c := Card{
		Kind:      kind,
		Subfamily: "Imena Family",
		Date:      "JAN 01 2026",
		Time:      "9AM | SATURDAY",
		Location:  "RCA - NYABIHU",
	}
	switch kind {
	case KindAnnouncements:
		c.Template = 1
		c.Title = "SATURDAY GATHERING"
		c.Tagline = "Come and Join us for the"
	case KindEvents:
		c.Template = 2
	default:
		return Card{}, ErrUnknownKind
	}
	return c, nil
}

// Merge overlays non-empty fields from in onto the defaults for in.Kind.
func Merge(in Card) (Card, error) {
	c, err := Defaults(in.Kind)
	if err != nil {
		return Card{}, err
	}
	set := func(dst *string, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
		}
	}
	set(&c.Title, in.Title)
	set(&c.Tagline, in.Tagline)
	set(&c.Subfamily, in.Subfamily)
	set(&c.Date, in.Date)
	set(&c.Time, in.Time)
	set(&c.Location, in.Location)
	set(&c.Host, in.Host)
	c.Agenda = strings.TrimSpace(in.Agenda)
	return c, nil
}

func (s *InvitationService) Save(sessionID string, c Card) (string, error) {
	return s.repo.Save(repos.Invitation{
		SessionID: sessionID,
		Kind:      c.Kind,
		Template:  c.Template,
		Title:     c.Title,
		Tagline:   c.Tagline,
		Subfamily: c.Subfamily,
		Date:      c.Date,
		Time:      c.Time,
		Location:  c.Location,
		Host:      c.Host,
		Agenda:    c.Agenda,
	})
}

func (s *InvitationService) Get(sessionID, id string) (Card, error) {
	inv, err := s.repo.Get(id, sessionID)
	if err != nil {
		return Card{}, err
	}
	return cardFrom(inv), nil
}

func (s *InvitationService) Recent(sessionID string) ([]Card, []string, error) {
	invs, err := s.repo.ListBySession(sessionID, 10)
	if err != nil {
		return nil, nil, err
	}
	cards := make([]Card, 0, len(invs))
	ids := make([]string, 0, len(invs))
	for _, inv := range invs {
		cards = append(cards, cardFrom(inv))
		ids = append(ids, inv.ID)
	}
	return cards, ids, nil
}

func cardFrom(inv repos.Invitation) Card {
	return Card{
		Kind:      inv.Kind,
		Template:  inv.Template,
		Title:     inv.Title,
		Tagline:   inv.Tagline,
		Subfamily: inv.Subfamily,
		Date:      inv.Date,
		Time:      inv.Time,
		Location:  inv.Location,
		Host:      inv.Host,
		Agenda:    inv.Agenda,
	}
}

const maxAgendaLines = 8

var svgFuncs = template.FuncMap{
	"x":       xmlEscape,
	"agendaY": func(i int) int { return 700 + i*36 },
}

func xmlEscape(s string) string {
	var b bytes.Buffer
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

var cardTemplates = map[int]*template.Template{
	1: template.Must(template.New("announcement").Funcs(svgFuncs).Parse(announcementSVG)),
	2: template.Must(template.New("event").Funcs(svgFuncs).Parse(eventSVG)),
}

// Render draws the card as a standalone SVG document.
func Render(c Card) ([]byte, error) {
	t, ok := cardTemplates[c.Template]
	if !ok {
		t = cardTemplates[2]
	}
	var b bytes.Buffer
	if err := t.Execute(&b, c); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

const announcementSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="800" height="1000" viewBox="0 0 800 1000">
  <rect width="800" height="1000" fill="#0f172a"/>
  <rect x="40" y="40" width="720" height="920" fill="none" stroke="#f59e0b" stroke-width="4"/>
  <text x="400" y="150" font-family="Georgia, serif" font-size="36" fill="#fcd34d" text-anchor="middle">{{x .Subfamily}}</text>
  <text x="400" y="330" font-family="Georgia, serif" font-size="30" fill="#e2e8f0" text-anchor="middle">{{x .Tagline}}</text>
  <text x="400" y="420" font-family="Impact, sans-serif" font-size="64" fill="#ffffff" text-anchor="middle">{{x .Title}}</text>
  <line x1="200" y1="480" x2="600" y2="480" stroke="#f59e0b" stroke-width="2"/>
  <text x="400" y="580" font-family="Helvetica, sans-serif" font-size="40" fill="#fcd34d" text-anchor="middle">{{x .Date}}</text>
  <text x="400" y="650" font-family="Helvetica, sans-serif" font-size="32" fill="#e2e8f0" text-anchor="middle">{{x .Time}}</text>
  <text x="400" y="760" font-family="Helvetica, sans-serif" font-size="30" fill="#e2e8f0" text-anchor="middle">{{x .Location}}</text>
{{- if .Host}}
  <text x="400" y="880" font-family="Helvetica, sans-serif" font-size="24" fill="#94a3b8" text-anchor="middle">Hosted by {{x .Host}}</text>
{{- end}}
</svg>
`

const eventSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="800" height="1000" viewBox="0 0 800 1000">
  <rect width="800" height="1000" fill="#fdf6ec"/>
  <rect x="0" y="0" width="800" height="220" fill="#7c2d12"/>
  <text x="400" y="95" font-family="Georgia, serif" font-size="34" fill="#fed7aa" text-anchor="middle">{{x .Subfamily}}</text>
  <text x="400" y="170" font-family="Georgia, serif" font-size="52" fill="#ffffff" text-anchor="middle">{{if .Title}}{{x .Title}}{{else}}You are invited{{end}}</text>
{{- if .Tagline}}
  <text x="400" y="290" font-family="Georgia, serif" font-size="28" fill="#7c2d12" text-anchor="middle">{{x .Tagline}}</text>
{{- end}}
  <text x="120" y="380" font-family="Helvetica, sans-serif" font-size="26" fill="#451a03">DATE</text>
  <text x="300" y="380" font-family="Helvetica, sans-serif" font-size="26" fill="#1c1917">{{x .Date}}</text>
  <text x="120" y="440" font-family="Helvetica, sans-serif" font-size="26" fill="#451a03">TIME</text>
  <text x="300" y="440" font-family="Helvetica, sans-serif" font-size="26" fill="#1c1917">{{x .Time}}</text>
  <text x="120" y="500" font-family="Helvetica, sans-serif" font-size="26" fill="#451a03">WHERE</text>
  <text x="300" y="500" font-family="Helvetica, sans-serif" font-size="26" fill="#1c1917">{{x .Location}}</text>
{{- if .Host}}
  <text x="120" y="560" font-family="Helvetica, sans-serif" font-size="26" fill="#451a03">HOST</text>
  <text x="300" y="560" font-family="Helvetica, sans-serif" font-size="26" fill="#1c1917">{{x .Host}}</text>
{{- end}}
{{- with .AgendaLines}}
  <text x="120" y="650" font-family="Helvetica, sans-serif" font-size="26" fill="#451a03">AGENDA</text>
{{- range $i, $l := .}}
  <text x="140" y="{{agendaY $i}}" font-family="Helvetica, sans-serif" font-size="22" fill="#1c1917">{{x $l}}</text>
{{- end}}
{{- end}}
</svg>
`
