package configinit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/railinfo/internal/infra/configfinder"
)

func TestInitializer_Init_WritesLoadableConfig(t *testing.T) {
	tmp := t.TempDir()

	if err := NewInitializer().Init(tmp, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	cfgPath := filepath.Join(tmp, configfinder.ConfigFile)
	info, err := os.Stat(cfgPath)
	if err != nil {
		t.Fatalf("expected config file: %v", err)
	}
	if got := info.Mode().Perm(); got != 0o600 {
		t.Fatalf("expected config file mode 600, got %o", got)
	}

	cfg, err := configfinder.LoadConfig(tmp)
	if err != nil {
		t.Fatalf("generated config does not load: %v", err)
	}
	if cfg.Defaults.Quota != "GN" {
		t.Fatalf("expected quota GN, got %q", cfg.Defaults.Quota)
	}

	if _, err := os.Stat(filepath.Join(tmp, ".railinfo", "logs")); err != nil {
		t.Fatalf("expected logs dir: %v", err)
	}
}

func TestInitializer_Init_SkipsExistingFilesUnlessForce(t *testing.T) {
	tmp := t.TempDir()

	cfgPath := filepath.Join(tmp, configfinder.ConfigFile)
	if err := os.WriteFile(cfgPath, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing config: %v", err)
	}

	i := NewInitializer()

	if err := i.Init(tmp, false); err != nil {
		t.Fatalf("Init (force=false) error: %v", err)
	}
	b, _ := os.ReadFile(cfgPath)
	if string(b) != "custom\n" {
		t.Fatalf("expected existing config to be kept, got %q", string(b))
	}

	if err := i.Init(tmp, true); err != nil {
		t.Fatalf("Init (force=true) error: %v", err)
	}
	b, _ = os.ReadFile(cfgPath)
	if !strings.Contains(string(b), "base_url") {
		t.Fatalf("expected config to be overwritten, got %q", string(b))
	}
}

func TestEnsureGitignore_CreatesFile(t *testing.T) {
	tmp := t.TempDir()

	if err := ensureGitignore(tmp); err != nil {
		t.Fatalf("ensureGitignore error: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(tmp, ".gitignore"))
	if err != nil {
		t.Fatalf("read .gitignore: %v", err)
	}
	s := string(b)
	for _, w := range []string{"# railinfo", ".railinfo/"} {
		if !strings.Contains(s, w) {
			t.Fatalf("expected .gitignore to contain %q, got:\n%s", w, s)
		}
	}
}

func TestEnsureGitignore_AppendsOnce(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, ".gitignore")
	if err := os.WriteFile(path, []byte("bin/"), 0o644); err != nil {
		t.Fatalf("write .gitignore: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := ensureGitignore(tmp); err != nil {
			t.Fatalf("ensureGitignore error: %v", err)
		}
	}

	b, _ := os.ReadFile(path)
	s := string(b)
	if !strings.HasPrefix(s, "bin/\n") {
		t.Fatalf("expected existing entries kept, got:\n%s", s)
	}
	if strings.Count(s, ".railinfo/") != 1 {
		t.Fatalf("expected a single .railinfo/ entry, got:\n%s", s)
	}
}
