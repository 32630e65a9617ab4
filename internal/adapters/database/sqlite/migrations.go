package sqlite

import (
	"fmt"

	"gorm.io/gorm"
)

// Table pairs a table name with its column-definition fragment. Tables are
// created in slice order, so referenced tables must come first.
type Table struct {
	Name    string
	Columns string
}

// Tables is the full schema, ordered for foreign-key dependencies.
var Tables = []Table{
	{"colleges", `
		id TEXT PRIMARY KEY,
		created_at DATETIME,
		name TEXT NOT NULL UNIQUE`},
	{"permissions", `
		id TEXT PRIMARY KEY,
		slug TEXT NOT NULL UNIQUE,
		description TEXT`},
	{"tags", `
		id TEXT PRIMARY KEY,
		created_at DATETIME,
		name TEXT NOT NULL UNIQUE,
		join_policy TEXT NOT NULL DEFAULT 'open',
		view_policy TEXT NOT NULL DEFAULT 'open'`},
	{"roles", `
		id TEXT PRIMARY KEY,
		created_at DATETIME,
		name TEXT NOT NULL UNIQUE`},
	{"role_permissions", `
		role_id TEXT NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
		permission_id TEXT NOT NULL REFERENCES permissions(id) ON DELETE CASCADE,
		PRIMARY KEY (role_id, permission_id)`},
	{"role_managed_tags", `
		role_id TEXT NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
		tag_id TEXT NOT NULL REFERENCES tags(id) ON DELETE CASCADE,
		PRIMARY KEY (role_id, tag_id)`},
	{"users", `
		id TEXT PRIMARY KEY,
		created_at DATETIME,
		updated_at DATETIME,
		email TEXT NOT NULL UNIQUE,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		college_id TEXT REFERENCES colleges(id),
		role_id TEXT REFERENCES roles(id),
		is_admin INTEGER NOT NULL DEFAULT 0,
		joined_at DATETIME`},
	{"events", `
		id TEXT PRIMARY KEY,
		created_at DATETIME,
		updated_at DATETIME,
		title TEXT NOT NULL,
		description TEXT,
		location TEXT,
		start_time DATETIME NOT NULL,
		end_time DATETIME NOT NULL,
		max_attendees INTEGER NOT NULL DEFAULT 0,
		cost INTEGER NOT NULL DEFAULT 0,
		upfront_refund_cutoff DATETIME,
		cancelled INTEGER NOT NULL DEFAULT 0,
		enable_waitlist INTEGER NOT NULL DEFAULT 0`},
	{"event_tags", `
		event_id TEXT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
		tag_id TEXT NOT NULL REFERENCES tags(id) ON DELETE CASCADE,
		PRIMARY KEY (event_id, tag_id)`},
	{"event_attendees", `
		id TEXT PRIMARY KEY,
		created_at DATETIME,
		updated_at DATETIME,
		event_id TEXT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		is_attending INTEGER NOT NULL DEFAULT 1`},
	{"event_waiting_lists", `
		id TEXT PRIMARY KEY,
		event_id TEXT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		joined_at DATETIME NOT NULL`},
	{"transactions", `
		id TEXT PRIMARY KEY,
		created_at DATETIME,
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		event_id TEXT REFERENCES events(id) ON DELETE SET NULL,
		amount INTEGER NOT NULL,
		description TEXT NOT NULL`},
	{"swim_histories", `
		id TEXT PRIMARY KEY,
		created_at DATETIME,
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		lengths INTEGER NOT NULL DEFAULT 0,
		lengths_underwater INTEGER NOT NULL DEFAULT 0,
		recorded_by_id TEXT NOT NULL REFERENCES users(id)`},
}

// indexes created after the tables. The partial index is what actually
// enforces the one-active-sign-up-per-user invariant.
var indexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_event_attendees_active
		ON event_attendees(event_id, user_id) WHERE is_attending = 1`,
	`CREATE INDEX IF NOT EXISTS idx_event_waiting_lists_queue
		ON event_waiting_lists(event_id, joined_at)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_user ON transactions(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_swim_histories_user ON swim_histories(user_id)`,
}

// EnsureTable creates the named table from its column fragment unless a
// table of that name already exists in the catalog. It reports whether the
// table pre-existed. Engine errors (including malformed fragments) are
// returned as-is.
func EnsureTable(db *gorm.DB, name, columns string) (existed bool, err error) {
	if db.Migrator().HasTable(name) {
		return true, nil
	}
	stmt := fmt.Sprintf("CREATE TABLE %s (%s)", name, columns)
	if err = db.Exec(stmt).Error; err != nil {
		return false, err
	}
	return false, nil
}

// Migrate builds every table and index. Safe to run on every start; any
// failure is fatal to initialization and is returned to the caller.
func Migrate(db *gorm.DB) error {
	for _, t := range Tables {
		if _, err := EnsureTable(db, t.Name, t.Columns); err != nil {
			return fmt.Errorf("failed to create table %s: %w", t.Name, err)
		}
	}
	for _, idx := range indexes {
		if err := db.Exec(idx).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}
