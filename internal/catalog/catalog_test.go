package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalogFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSkillCatalog_MissingFileUsesDefaults(t *testing.T) {
	c := LoadSkillCatalog(filepath.Join(t.TempDir(), "nope.json"))

	assert.Equal(t, DefaultSkillCatalog(), c)
	assert.Contains(t, c.Technical, "python")
	assert.Contains(t, c.Soft, "teamwork")
}

func TestLoadSkillCatalog_ValidDocument(t *testing.T) {
	path := writeCatalogFile(t, "skills.json", `{
		"technical_skills": ["go", "rust"],
		"soft_skills": ["empathy"],
		"certifications": [],
		"languages": ["spanish"]
	}`)

	c := LoadSkillCatalog(path)

	assert.Equal(t, []string{"go", "rust"}, c.Technical)
	assert.Equal(t, []string{"empathy"}, c.Soft)
	assert.Equal(t, []string{"spanish"}, c.Languages)
}

func TestLoadSkillCatalog_MalformedJSONYieldsEmpty(t *testing.T) {
	path := writeCatalogFile(t, "skills.json", `{"technical_skills": [`)

	c := LoadSkillCatalog(path)

	assert.Empty(t, c.Technical)
	assert.Empty(t, c.Soft)
}

func TestLoadSkillCatalog_SchemaInvalidYieldsEmpty(t *testing.T) {
	path := writeCatalogFile(t, "skills.json", `{"technical_skills": "not-a-list"}`)

	c := LoadSkillCatalog(path)

	assert.Empty(t, c.Technical)
}

func TestLoadSkillCatalog_UnknownFieldYieldsEmpty(t *testing.T) {
	path := writeCatalogFile(t, "skills.json", `{"hard_skills": ["go"]}`)

	c := LoadSkillCatalog(path)

	assert.Empty(t, c.Technical)
}

func TestLoadRoleCatalog_MissingFileUsesDefaults(t *testing.T) {
	c := LoadRoleCatalog(filepath.Join(t.TempDir(), "nope.json"))

	require.NotEmpty(t, c.Roles)
	assert.Equal(t, "Software Engineer", c.Roles[0].Title)
}

func TestLoadRoleCatalog_ValidDocument(t *testing.T) {
	path := writeCatalogFile(t, "roles.json", `{
		"job_roles": [
			{"title": "SRE", "keywords": ["kubernetes", "terraform"]}
		]
	}`)

	c := LoadRoleCatalog(path)

	require.Len(t, c.Roles, 1)
	assert.Equal(t, "SRE", c.Roles[0].Title)
	assert.Equal(t, []string{"kubernetes", "terraform"}, c.Roles[0].Keywords)
}

func TestLoadRoleCatalog_MissingTitleYieldsEmpty(t *testing.T) {
	path := writeCatalogFile(t, "roles.json", `{"job_roles": [{"keywords": ["go"]}]}`)

	c := LoadRoleCatalog(path)

	assert.Empty(t, c.Roles)
}

func TestDefaultRoleCatalog_OrderIsStable(t *testing.T) {
	a := DefaultRoleCatalog()
	b := DefaultRoleCatalog()

	require.Equal(t, a, b)
	assert.Len(t, a.Roles, 10)
}
