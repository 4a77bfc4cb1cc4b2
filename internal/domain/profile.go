package domain

// Profile holds the single contact record plus optional SEO metadata.
// There is no identity beyond "the one active record"; it is replaced
// wholesale on every save.
type Profile struct {
	Bio       string `json:"bio" yaml:"bio"`
	Email     string `json:"email" yaml:"email"`
	Phone     string `json:"phone" yaml:"phone"`
	Instagram string `json:"instagram" yaml:"instagram"`
	Facebook  string `json:"facebook" yaml:"facebook"`
	Zalo      string `json:"zalo" yaml:"zalo"`
	Address   string `json:"address" yaml:"address"`

	// SEO fields are optional and may be absent from older persisted blobs.
	SEOTitle       string `json:"seoTitle,omitempty" yaml:"seoTitle,omitempty"`
	SEODescription string `json:"seoDescription,omitempty" yaml:"seoDescription,omitempty"`
	SEOKeywords    string `json:"seoKeywords,omitempty" yaml:"seoKeywords,omitempty"`
}

// MergeProfileDefaults shallow-merges loaded over def: every field that is
// empty in loaded keeps the default value. Backends that return partial
// records (fields introduced after the blob was written) therefore never
// surface empty fields the bundled record knows about.
func MergeProfileDefaults(loaded, def Profile) Profile {
	out := def
	if loaded.Bio != "" {
		out.Bio = loaded.Bio
	}
	if loaded.Email != "" {
		out.Email = loaded.Email
	}
	if loaded.Phone != "" {
		out.Phone = loaded.Phone
	}
	if loaded.Instagram != "" {
		out.Instagram = loaded.Instagram
	}
	if loaded.Facebook != "" {
		out.Facebook = loaded.Facebook
	}
	if loaded.Zalo != "" {
		out.Zalo = loaded.Zalo
	}
	if loaded.Address != "" {
		out.Address = loaded.Address
	}
	if loaded.SEOTitle != "" {
		out.SEOTitle = loaded.SEOTitle
	}
	if loaded.SEODescription != "" {
		out.SEODescription = loaded.SEODescription
	}
	if loaded.SEOKeywords != "" {
		out.SEOKeywords = loaded.SEOKeywords
	}
	return out
}
