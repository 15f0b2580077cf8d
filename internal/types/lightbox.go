package types

// ImageRef records how one <img> src was resolved during a lightbox run
type ImageRef struct {
	Src       string `json:"src"`
	Candidate string `json:"candidate"`
	Largest   string `json:"largest,omitempty"` // empty when no variant was found
}

// FileChange is the outcome of processing a single HTML file
type FileChange struct {
	Path     string     `json:"path"` // relative to the site root
	Modified bool       `json:"modified"`
	Images   []ImageRef `json:"images,omitempty"`
}

// AuditFinding describes one data-lightbox-src reference checked by the audit
type AuditFinding struct {
	File        string `json:"file"`
	Src         string `json:"src"`
	LightboxSrc string `json:"lightbox_src"`
	Resolved    string `json:"resolved"`
	Missing     bool   `json:"missing"`
}
