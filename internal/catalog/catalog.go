// Package catalog provides the immutable reference data driving skill and
// role matching. Catalogs are loaded once at process start and read-only
// thereafter; load failures fall back to built-in defaults or empty data and
// are never propagated.
package catalog

import (
	"encoding/json"
	"log"
	"os"
)

// SkillCatalog holds the four categorized sets of canonical lowercase skill
// terms. Matching against resume text is case-insensitive and whole-word.
type SkillCatalog struct {
	Technical      []string `json:"technical_skills"`
	Soft           []string `json:"soft_skills"`
	Certifications []string `json:"certifications"`
	Languages      []string `json:"languages"`
}

// Role is one job role with its keyword list. Keyword order is preserved from
// the catalog document; role order is significant as a ranking tie-break.
type Role struct {
	Title    string   `json:"title"`
	Keywords []string `json:"keywords"`
}

// RoleCatalog is the ordered list of known job roles.
type RoleCatalog struct {
	Roles []Role `json:"job_roles"`
}

// LoadSkillCatalog reads the skills document from path. A missing file yields
// the built-in default catalog; an unreadable, malformed, or schema-invalid
// document is logged and replaced with an empty catalog.
func LoadSkillCatalog(path string) *SkillCatalog {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSkillCatalog()
		}
		log.Printf("[catalog] error reading skills data %s: %v", path, err)
		return &SkillCatalog{}
	}

	if err := validateSkillsDocument(data); err != nil {
		log.Printf("[catalog] invalid skills data %s: %v", path, err)
		return &SkillCatalog{}
	}

	var c SkillCatalog
	if err := json.Unmarshal(data, &c); err != nil {
		log.Printf("[catalog] error parsing skills data %s: %v", path, err)
		return &SkillCatalog{}
	}

	return &c
}

// LoadRoleCatalog reads the roles document from path. A missing file yields
// the built-in default roles; an unreadable, malformed, or schema-invalid
// document is logged and replaced with an empty role list.
func LoadRoleCatalog(path string) *RoleCatalog {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultRoleCatalog()
		}
		log.Printf("[catalog] error reading job roles data %s: %v", path, err)
		return &RoleCatalog{}
	}

	if err := validateRolesDocument(data); err != nil {
		log.Printf("[catalog] invalid job roles data %s: %v", path, err)
		return &RoleCatalog{}
	}

	var c RoleCatalog
	if err := json.Unmarshal(data, &c); err != nil {
		log.Printf("[catalog] error parsing job roles data %s: %v", path, err)
		return &RoleCatalog{}
	}

	return &c
}
