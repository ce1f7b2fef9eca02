// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package export writes a parsed capture to a SQLite database.
//
// Each export is a directory holding a single database, DatabaseName. The
// directory is assembled in a staging location and moved into place only
// once the database is complete.
package export

import (
	"crypto/rand"
	"database/sql"
	"time"

	"github.com/danjacques/godem/protocol"
	"github.com/danjacques/godem/replay"
	"github.com/danjacques/godem/support/logging"
	"github.com/danjacques/godem/support/stagingdir"

	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"
)

// DatabaseName is the name of the database within an export directory.
const DatabaseName = "capture.db"

// Exporter writes Results to export directories.
type Exporter struct {
	// TempDir is the directory that staging directories are created under. If
	// empty, the system temporary directory is used.
	//
	// Commit renames the staging directory, so TempDir should be on the same
	// filesystem as the destination.
	TempDir string

	// Logger is the logger instance to use. If nil, no logging will be
	// performed.
	Logger logging.L

	// NowFunc, if not nil, returns the current time. If nil, time.Now is used.
	NowFunc func() time.Time
}

func (e *Exporter) now() time.Time {
	if e.NowFunc != nil {
		return e.NowFunc()
	}
	return time.Now()
}

// Export writes res, parsed from source, to the directory dest, replacing
// anything already there. It returns the export's run ID.
func (e *Exporter) Export(res *replay.Result, source, dest string) (string, error) {
	now := e.now()
	runID := ulid.MustNew(ulid.Timestamp(now), ulid.Monotonic(rand.Reader, 0)).String()

	sd, err := stagingdir.New(e.TempDir, "godem_export")
	if err != nil {
		return "", err
	}
	defer func() {
		if err := sd.Destroy(); err != nil {
			logging.Must(e.Logger).Warnf("Could not clean up staging directory: %s", err)
		}
	}()

	db, err := Open(sd.Path(DatabaseName))
	if err != nil {
		return "", err
	}
	if err := write(db, runID, source, now, res); err != nil {
		db.Close()
		return "", err
	}
	if err := db.Close(); err != nil {
		return "", errors.Wrap(err, "closing database")
	}

	if err := sd.Commit(dest); err != nil {
		return "", err
	}
	logging.Must(e.Logger).Infof("Exported run %s to %q.", runID, dest)
	return runID, nil
}

func write(db *sql.DB, runID, source string, now time.Time, res *replay.Result) (err error) {
	tx, err := db.Begin()
	if err != nil {
		return errors.Wrap(err, "beginning transaction")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	w := writer{tx: tx, runID: runID}
	for _, fn := range []func(*replay.Result) error{
		func(res *replay.Result) error { return w.run(source, now, res) },
		w.messages,
		w.tables,
		w.modifiers,
		w.failures,
	} {
		if err = fn(res); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return errors.Wrap(err, "committing transaction")
	}
	return nil
}

type writer struct {
	tx    *sql.Tx
	runID string
}

func (w *writer) run(source string, now time.Time, res *replay.Result) error {
	var (
		mapName, serverName           sql.NullString
		networkProtocol, playbackTick sql.NullInt64
		matchID, gameWinner           sql.NullInt64
	)
	if h := res.Header; h != nil {
		mapName = sql.NullString{String: h.GetMapName(), Valid: true}
		serverName = sql.NullString{String: h.GetServerName(), Valid: true}
		networkProtocol = sql.NullInt64{Int64: int64(h.GetNetworkProtocol()), Valid: true}
	}
	if fi := res.FileInfo; fi != nil {
		playbackTick = sql.NullInt64{Int64: int64(fi.GetPlaybackTicks()), Valid: true}
		if g := fi.Dota(); g != nil {
			matchID = sql.NullInt64{Int64: int64(g.GetMatchId()), Valid: true}
			gameWinner = sql.NullInt64{Int64: int64(g.GetGameWinner()), Valid: true}
		}
	}

	_, err := w.tx.Exec(`
		INSERT INTO runs (id, source, created_at, reserved, map_name, server_name,
		  network_protocol, match_id, game_winner, playback_ticks, last_tick)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		w.runID, source, now.Unix(), int64(res.Reserved), mapName, serverName,
		networkProtocol, matchID, gameWinner, playbackTick, int64(res.LastTick))
	return errors.Wrap(err, "inserting run")
}

func (w *writer) messages(res *replay.Result) error {
	stmt, err := w.tx.Prepare(`
		INSERT INTO messages (run_id, seq, phase, kind, tick, byte_offset, size,
		  compressed, embedded)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "preparing message insert")
	}
	defer stmt.Close()

	seq := 0
	for _, p := range replay.Phases {
		for _, msg := range res.Phases[p] {
			if _, err := stmt.Exec(w.runID, seq, p.String(), msg.Kind.String(), int64(msg.Tick),
				msg.Offset, int64(msg.Size), msg.Compressed, len(msg.Embedded)); err != nil {
				return errors.Wrapf(err, "inserting message %d", seq)
			}
			seq++
		}
	}
	return nil
}

func (w *writer) tables(res *replay.Result) error {
	if res.Tables == nil {
		return nil
	}

	for _, t := range res.Tables.Tables() {
		if _, err := w.tx.Exec(`
			INSERT INTO string_tables (run_id, position, name, max_entries, fixed_bits, flags)
			VALUES (?, ?, ?, ?, ?, ?)`,
			w.runID, t.Position, t.Name, t.Layout.MaxEntries, t.Layout.FixedBits, t.Flags); err != nil {
			return errors.Wrapf(err, "inserting table %q", t.Name)
		}

		for _, index := range t.Indices() {
			row := t.Row(index)
			if _, err := w.tx.Exec(`
				INSERT INTO string_table_rows (run_id, position, row_index, row_key, value, specialized)
				VALUES (?, ?, ?, ?, ?, ?)`,
				w.runID, t.Position, index, row.Key, row.Value, row.Specialized()); err != nil {
				return errors.Wrapf(err, "inserting row %d of %q", index, t.Name)
			}

			if ui := row.UserInfo; ui != nil {
				if err := w.user(index, ui); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (w *writer) user(index int, ui *protocol.UserInfo) error {
	_, err := w.tx.Exec(`
		INSERT INTO users (run_id, row_index, user_id, xuid, name, guid, fake_player, is_hltv)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		w.runID, index, ui.UserID, int64(ui.XUID), ui.Name(), ui.GUID(), ui.FakePlayer, ui.IsHLTV)
	return errors.Wrapf(err, "inserting user %d", index)
}

func (w *writer) modifiers(res *replay.Result) error {
	stmt, err := w.tx.Prepare(`
		INSERT INTO modifiers (run_id, seq, entry_type, parent, idx, serial_num,
		  modifier_class, ability_level, stack_count, creation_time, duration,
		  caster, ability)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "preparing modifier insert")
	}
	defer stmt.Close()

	for i, m := range res.Modifiers {
		if _, err := stmt.Exec(w.runID, i, m.GetEntryType().String(), m.GetParent(), m.GetIndex(),
			m.GetSerialNum(), m.GetModifierClass(), m.GetAbilityLevel(), m.GetStackCount(),
			m.GetCreationTime(), m.GetDuration(), m.GetCaster(), m.GetAbility()); err != nil {
			return errors.Wrapf(err, "inserting modifier %d", i)
		}
	}
	return nil
}

func (w *writer) failures(res *replay.Result) error {
	for _, f := range res.SpecializationFailures {
		if _, err := w.tx.Exec(`
			INSERT INTO specialization_failures (run_id, table_name, row_index, error)
			VALUES (?, ?, ?, ?)`,
			w.runID, f.Table, f.Index, f.Err.Error()); err != nil {
			return errors.Wrap(err, "inserting specialization failure")
		}
	}
	return nil
}
