package repos

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Invitation struct {
	ID        string `db:"id"`
	SessionID string `db:"session_id"`
	Kind      string `db:"kind"` // announcements | events
	Template  int    `db:"template"`
	Title     string `db:"title"`
	Tagline   string `db:"tagline"`
	Subfamily string `db:"subfamily"`
	Date      string `db:"event_date"`
	Time      string `db:"event_time"`
	Location  string `db:"location"`
	Host      string `db:"host"`
	Agenda    string `db:"agenda"`
	CreatedAt string `db:"created_at"`
}

type InvitationRepo struct{ db *sqlx.DB }

func NewInvitationRepo(db *sqlx.DB) *InvitationRepo { return &InvitationRepo{db: db} }

// Save stores inv under a new id and returns it.
func (r *InvitationRepo) Save(inv Invitation) (string, error) {
	inv.ID = uuid.NewString()
	_, err := r.db.NamedExec(`
	  INSERT INTO invitations(id, session_id, kind, template, title, tagline, subfamily,
	    event_date, event_time, location, host, agenda)
	  VALUES(:id, :session_id, :kind, :template, :title, :tagline, :subfamily,
	    :event_date, :event_time, :location, :host, :agenda)
	`, inv)
	if err != nil {
		return "", err
	}
	return inv.ID, nil
}

// Get loads an invitation owned by the session.
func (r *InvitationRepo) Get(id, sessionID string) (Invitation, error) {
	var inv Invitation
	err := r.db.Get(&inv, `
	  SELECT id, session_id, kind, template, title, tagline, subfamily, event_date, event_time,
	    location, host, agenda, COALESCE(created_at,'') AS created_at
	  FROM invitations WHERE id=? AND session_id=?
	`, id, sessionID)
	return inv, err
}

func (r *InvitationRepo) ListBySession(sessionID string, limit int) ([]Invitation, error) {
	var out []Invitation
	err := r.db.Select(&out, `
	  SELECT id, session_id, kind, template, title, tagline, subfamily, event_date, event_time,
	    location, host, agenda, COALESCE(created_at,'') AS created_at
	  FROM invitations WHERE session_id=?
	  ORDER BY created_at DESC, rowid DESC
	  LIMIT ?
	`, sessionID, limit)
	return out, err
}
