//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir string // HOME — config lands in $HOME/.ymp/
	DocsDir string // .ymp documents under test
}

// setupTestEnv creates isolated temp directories and points HOME at one of
// them so config reads and writes stay sandboxed.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir: t.TempDir(),
		DocsDir: t.TempDir(),
	}
	t.Setenv("HOME", env.HomeDir)
	return env
}

// setupDocuments writes a small set of repository descriptions covering the
// well-formed, structurally empty and malformed cases. Returns the paths by name.
func setupDocuments(t *testing.T, dir string) map[string]string {
	t.Helper()

	docs := map[string]string{
		"leap.ymp": `<?xml version="1.0" encoding="UTF-8"?>
<metapackage xmlns:os="http://opensuse.org/Standards/One_Click_Install" xmlns="http://opensuse.org/Standards/One_Click_Install">
  <group distversion="openSUSE Leap 15.6">
    <repositories>
      <repository format="rpm-md" alias="leap-oss" recommended="true">
        <url>https://download.example.org/distribution/leap/15.6/repo/oss/</url>
        <name>Main Repository</name>
        <name lang="de">Hauptrepository</name>
        <summary>Open source packages</summary>
        <description>The main repository of the distribution.</description>
        <description lang="de">Das Hauptrepository der Distribution.</description>
      </repository>
      <repository format="rpm-md" alias="leap-update">
        <url>https://download.example.org/update/leap/15.6/oss/</url>
        <name>Update Repository</name>
      </repository>
    </repositories>
  </group>
  <group distversion="openSUSE Tumbleweed">
    <repositories>
      <repository format="rpm-md" alias="tw-oss" recommended="true">
        <url>https://download.example.org/tumbleweed/repo/oss/</url>
        <name>Tumbleweed OSS</name>
      </repository>
    </repositories>
  </group>
</metapackage>
`,
		"empty.ymp": `<metapackage/>`,
		"broken.ymp": `<metapackage>
  <group distversion="openSUSE Leap 15.6">
    <repositories>
      <repository format="rpm-md">
  </group>
</metapackage>
`,
	}

	paths := make(map[string]string, len(docs))
	for name, content := range docs {
		path := filepath.Join(dir, name)
		writeFile(t, path, content)
		paths[name] = path
	}
	return paths
}

// writeFile creates a file with the given content, creating parent directories.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}
