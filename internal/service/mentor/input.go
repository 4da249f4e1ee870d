package mentor

import (
	"strings"
	"unicode/utf8"

	"github.com/workchatseattle/community-backend/internal/domain"
)

// Field names reported in validation errors; they match the JSON body.
const (
	fieldBio          = "bio"
	fieldContactEmail = "contactEmail"
	fieldLinkedInURL  = "linkedInUrl"
	fieldIndustryIDs  = "industryIds"
	fieldExpertiseIDs = "expertiseAreaIds"
)

const (
	MaxBioLength      = 5000
	MaxEmailLength    = 320
	MaxLinkedInLength = 512
)

// RegisterInput holds the parameters for registering as a mentor.
type RegisterInput struct {
	Bio          string
	ContactEmail string
	LinkedInURL  *string
	IndustryIDs  []string
	ExpertiseIDs []string
}

// Normalize trims text fields and deduplicates tag ids.
func (i RegisterInput) Normalize() RegisterInput {
	i.Bio = strings.TrimSpace(i.Bio)
	i.ContactEmail = strings.TrimSpace(i.ContactEmail)
	i.LinkedInURL = trimOrNil(i.LinkedInURL)
	i.IndustryIDs = domain.NormalizeTagIDs(i.IndustryIDs)
	i.ExpertiseIDs = domain.NormalizeTagIDs(i.ExpertiseIDs)
	return i
}

// Validate checks all fields and collects all errors. Call on normalized input.
func (i RegisterInput) Validate() error {
	var v domain.Violations

	validateBio(&v, i.Bio)
	validateEmail(&v, i.ContactEmail)
	if i.LinkedInURL != nil {
		validateLinkedIn(&v, *i.LinkedInURL)
	}
	if len(i.IndustryIDs) == 0 {
		v.Add(fieldIndustryIDs, "at least one required")
	}
	if len(i.ExpertiseIDs) == 0 {
		v.Add(fieldExpertiseIDs, "at least one required")
	}

	return v.Err()
}

// UpdateProfileInput holds a partial profile edit. nil fields are left
// unchanged; a non-nil tag slice replaces the whole set and must not be empty.
// LinkedInURL = ptr("") removes the link.
type UpdateProfileInput struct {
	Bio          *string
	ContactEmail *string
	LinkedInURL  *string
	IndustryIDs  []string
	ExpertiseIDs []string
}

// Normalize trims text fields and deduplicates supplied tag ids.
func (i UpdateProfileInput) Normalize() UpdateProfileInput {
	i.Bio = trimPtr(i.Bio)
	i.ContactEmail = trimPtr(i.ContactEmail)
	i.LinkedInURL = trimPtr(i.LinkedInURL)
	if i.IndustryIDs != nil {
		i.IndustryIDs = domain.NormalizeTagIDs(i.IndustryIDs)
	}
	if i.ExpertiseIDs != nil {
		i.ExpertiseIDs = domain.NormalizeTagIDs(i.ExpertiseIDs)
	}
	return i
}

// Validate checks all fields and collects all errors. Call on normalized input.
func (i UpdateProfileInput) Validate() error {
	var v domain.Violations

	if i.Bio == nil && i.ContactEmail == nil && i.LinkedInURL == nil &&
		i.IndustryIDs == nil && i.ExpertiseIDs == nil {
		v.Add("input", "at least one field must be provided")
	}
	if i.Bio != nil {
		validateBio(&v, *i.Bio)
	}
	if i.ContactEmail != nil {
		validateEmail(&v, *i.ContactEmail)
	}
	if i.LinkedInURL != nil && *i.LinkedInURL != "" {
		validateLinkedIn(&v, *i.LinkedInURL)
	}
	if i.IndustryIDs != nil && len(i.IndustryIDs) == 0 {
		v.Add(fieldIndustryIDs, "at least one required")
	}
	if i.ExpertiseIDs != nil && len(i.ExpertiseIDs) == 0 {
		v.Add(fieldExpertiseIDs, "at least one required")
	}

	return v.Err()
}

// params returns the scalar part of the edit.
func (i UpdateProfileInput) params() domain.MentorUpdateParams {
	return domain.MentorUpdateParams{
		Bio:          i.Bio,
		ContactEmail: i.ContactEmail,
		LinkedInURL:  i.LinkedInURL,
	}
}

func validateBio(v *domain.Violations, bio string) {
	switch {
	case bio == "":
		v.Add(fieldBio, "required")
	case utf8.RuneCountInString(bio) > MaxBioLength:
		v.Add(fieldBio, "max 5000 characters")
	}
}

func validateEmail(v *domain.Violations, email string) {
	switch {
	case email == "":
		v.Add(fieldContactEmail, "required")
	case len(email) > MaxEmailLength:
		v.Add(fieldContactEmail, "max 320 characters")
	case !domain.IsEmailAddress(email):
		v.Add(fieldContactEmail, "invalid email address")
	}
}

func validateLinkedIn(v *domain.Violations, link string) {
	switch {
	case len(link) > MaxLinkedInLength:
		v.Add(fieldLinkedInURL, "max 512 characters")
	case !domain.IsHTTPURL(link):
		v.Add(fieldLinkedInURL, "must be an absolute http(s) URL")
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// trimPtr trims whitespace but keeps an empty result.
func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
