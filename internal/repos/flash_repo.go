package repos

import "github.com/jmoiron/sqlx"

type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashError   FlashKind = "error"
	FlashInfo    FlashKind = "info"
)

type Flash struct {
	Kind    FlashKind `db:"kind"`
	Message string    `db:"message"`
}

type FlashRepo struct{ db *sqlx.DB }

func NewFlashRepo(db *sqlx.DB) *FlashRepo { return &FlashRepo{db: db} }

func (r *FlashRepo) Push(sessionID string, kind FlashKind, msg string) error {
	_, err := r.db.Exec(`INSERT INTO flashes(session_id, kind, message) VALUES(?,?,?)`, sessionID, kind, msg)
	return err
}

// Pop returns the pending messages for the session, oldest first, and removes them.
func (r *FlashRepo) Pop(sessionID string) ([]Flash, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var out []Flash
	if err := tx.Select(&out, `SELECT kind, message FROM flashes WHERE session_id=? ORDER BY id`, sessionID); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	if _, err := tx.Exec(`DELETE FROM flashes WHERE session_id=?`, sessionID); err != nil {
		return nil, err
	}
	return out, tx.Commit()
}
