package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/showcase/internal/models"
)

// Migrate reconciles the persisted users collection with the expected schema
// and the baseline seed. It runs at most once per Store lifetime; repeated
// calls return immediately.
//
// Outcomes:
//   - absent payload: the seed is written verbatim.
//   - unparseable payload: treated as absent; the seed replaces it. Parse
//     failures are recovered here and never propagated.
//   - well-formed payload containing the baseline admin: accepted as-is with
//     no rewrite, so fields added by a newer schema survive untouched.
//   - anything else: each record missing a password gets the default
//     backfilled, then the seed and the repaired records are merged by
//     username and the result is persisted.
//
// After Migrate returns nil the users collection is non-empty and contains
// the baseline admin. Once the fast path is reached the migration is a fixed
// point: re-running it changes nothing.
func (s *Store) Migrate(ctx context.Context) error {
	if s.migrated {
		return nil
	}

	raw, err := s.repo.Get(ctx, KeyUsers)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", KeyUsers, err)
	}

	if raw == nil {
		if err := s.SaveUsers(ctx, SeedUsers()); err != nil {
			return err
		}
		s.migrated = true
		s.log.Info(ctx, "users collection seeded")
		return nil
	}

	var rawElems []json.RawMessage
	if err := json.Unmarshal(raw, &rawElems); err != nil {
		s.log.Warn(ctx, "users payload malformed, reseeding", "error", err)
		if err := s.SaveUsers(ctx, SeedUsers()); err != nil {
			return err
		}
		s.migrated = true
		return nil
	}

	elems := decodeElements(rawElems)

	if wellFormed(elems) && hasBaselineAdmin(elems) {
		// Fast path: accept the persisted payload unmodified.
		s.migrated = true
		s.log.Debug(ctx, "users collection accepted as-is", "records", len(elems))
		return nil
	}

	merged := Merge(SeedUsers(), repair(rawElems))
	if err := s.SaveUsers(ctx, merged); err != nil {
		return err
	}
	s.migrated = true
	s.log.Info(ctx, "users collection repaired", "records", len(merged))
	return nil
}

// decodeElements decodes each element into a field map. Elements that are
// not JSON objects decode to nil.
func decodeElements(rawElems []json.RawMessage) []map[string]json.RawMessage {
	elems := make([]map[string]json.RawMessage, len(rawElems))
	for i, re := range rawElems {
		var m map[string]json.RawMessage
		if err := json.Unmarshal(re, &m); err != nil {
			m = nil
		}
		elems[i] = m
	}
	return elems
}

// wellFormed reports whether every element is an object carrying a password
// field. An empty sequence is not well-formed.
func wellFormed(elems []map[string]json.RawMessage) bool {
	if len(elems) == 0 {
		return false
	}
	for _, m := range elems {
		if m == nil {
			return false
		}
		if _, ok := m["password"]; !ok {
			return false
		}
	}
	return true
}

// hasBaselineAdmin reports whether an element with the baseline admin's
// username exists.
func hasBaselineAdmin(elems []map[string]json.RawMessage) bool {
	for _, m := range elems {
		raw, ok := m["username"]
		if !ok {
			continue
		}
		var username string
		if err := json.Unmarshal(raw, &username); err != nil {
			continue
		}
		if username == BaselineAdminUsername {
			return true
		}
	}
	return false
}

// repair decodes each element into a User, backfilling the default password
// where it is missing. Elements that cannot be decoded become zero records;
// Merge drops those because they carry no username.
func repair(rawElems []json.RawMessage) []models.User {
	repaired := make([]models.User, 0, len(rawElems))
	for _, re := range rawElems {
		var u models.User
		_ = json.Unmarshal(re, &u)
		if u.Password == "" {
			u.Password = defaultPassword
		}
		repaired = append(repaired, u)
	}
	return repaired
}
