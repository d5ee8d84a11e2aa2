package config

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"snippets/internal/domain"
	"snippets/pkg/log"
)

// Accounts is the identities document. A missing publishing entry means
// posts go to the timeline account.
type Accounts struct {
	Timeline   *domain.Identity `yaml:"timeline"`
	Publishing *domain.Identity `yaml:"publishing,omitempty"`
}

// ParseAccounts decodes an accounts document and applies identity defaults.
func ParseAccounts(data []byte) (Accounts, error) {
	var a Accounts
	if err := yaml.Unmarshal(data, &a); err != nil {
		return Accounts{}, fmt.Errorf("accounts: %w", err)
	}
	if a.Timeline != nil {
		n := a.Timeline.Normalize()
		a.Timeline = &n
	}
	if a.Publishing != nil {
		n := a.Publishing.Normalize()
		a.Publishing = &n
	}
	return a, nil
}

// Marshal encodes the document back to YAML.
func (a Accounts) Marshal() ([]byte, error) {
	return yaml.Marshal(a)
}

// SessionWriter receives identities from the accounts document.
type SessionWriter interface {
	SetTimeline(id domain.Identity)
	SetPublishing(id domain.Identity)
	ResetPublishing()
}

// ApplyTo installs the document's identities into s.
func (a Accounts) ApplyTo(s SessionWriter) {
	if a.Timeline != nil {
		s.SetTimeline(*a.Timeline)
	}
	if a.Publishing != nil {
		s.SetPublishing(*a.Publishing)
	} else {
		s.ResetPublishing()
	}
}

// AccountsFile is an accounts document on disk that is reloaded when its
// modification time changes.
type AccountsFile struct {
	mu          sync.RWMutex
	path        string
	current     Accounts
	lastModTime time.Time
	onChange    func(Accounts)
}

// LoadAccounts reads path. onChange, if set, is called with every
// successfully reloaded document, including this first one.
func LoadAccounts(path string, onChange func(Accounts)) (*AccountsFile, error) {
	f := &AccountsFile{path: path, onChange: onChange}
	if _, err := f.Refresh(); err != nil {
		return nil, err
	}
	return f, nil
}

// Current returns the last document read.
func (f *AccountsFile) Current() Accounts {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.current
}

// Refresh reloads the file if it changed since the last read and reports
// whether it did.
func (f *AccountsFile) Refresh() (bool, error) {
	info, err := os.Stat(f.path)
	if err != nil {
		return false, err
	}

	f.mu.RLock()
	unchanged := !f.lastModTime.IsZero() && !info.ModTime().After(f.lastModTime)
	f.mu.RUnlock()
	if unchanged {
		return false, nil
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return false, err
	}
	accounts, err := ParseAccounts(data)

	f.mu.Lock()
	f.lastModTime = info.ModTime()
	if err == nil {
		f.current = accounts
	}
	f.mu.Unlock()
	if err != nil {
		return false, err
	}

	if f.onChange != nil {
		f.onChange(accounts)
	}
	return true, nil
}

// Watch polls the file every interval until ctx is done. A broken edit is
// logged once and the previous document stays active until the next edit.
func (f *AccountsFile) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			changed, err := f.Refresh()
			if err != nil {
				log.GlobalWarn("accounts reload failed", "path", f.path, "error", err)
				continue
			}
			if changed {
				log.GlobalInfo("accounts reloaded", "path", f.path)
			}
		}
	}
}
