package localAuth

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MrEthical07/localAuth/store"
)

// directoryEntry pairs a profile with its plaintext credential. The pair is
// the unit stored under the normalized email key; invariant: exactly one
// entry per normalized email.
type directoryEntry struct {
	Profile    UserProfile `json:"profile"`
	Credential string      `json:"credential"`
}

// userDirectory is the whole-document user record over the KV store: the
// full directory is read on every access and written back in full on every
// mutation. There are no incremental writes.
type userDirectory struct {
	kv  store.KV
	key string
}

// normalizeEmail produces the directory key: trimmed and lower-cased.
// Applied at every read and write path; the profile keeps its email as
// submitted.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// load reads and decodes the full directory document. An absent record is
// an empty directory. An undecodable record is [ErrStoreCorrupt]; the
// caller must abort without writing.
func (d *userDirectory) load(ctx context.Context) (map[string]directoryEntry, error) {
	raw, ok, err := d.kv.Get(ctx, d.key)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return map[string]directoryEntry{}, nil
	}

	entries := map[string]directoryEntry{}
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("%w: users document: %v", ErrStoreCorrupt, err)
	}
	return entries, nil
}

// save serializes and writes the full directory document.
func (d *userDirectory) save(ctx context.Context, entries map[string]directoryEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode users document: %w", err)
	}
	return d.kv.Set(ctx, d.key, string(raw))
}

// lookup returns the entry for the normalized email, if any.
func (d *userDirectory) lookup(ctx context.Context, email string) (directoryEntry, bool, error) {
	entries, err := d.load(ctx)
	if err != nil {
		return directoryEntry{}, false, err
	}
	entry, ok := entries[normalizeEmail(email)]
	return entry, ok, nil
}

// merge applies the supplied fields of update onto profile. ID, Email, and
// CreatedAt are not reachable from a ProfileUpdate and therefore never
// change.
func merge(profile UserProfile, update ProfileUpdate) UserProfile {
	if update.FirstName != nil {
		profile.FirstName = strings.TrimSpace(*update.FirstName)
	}
	if update.LastName != nil {
		profile.LastName = strings.TrimSpace(*update.LastName)
	}
	if update.Phone != nil {
		profile.Phone = strings.TrimSpace(*update.Phone)
	}
	return profile
}
