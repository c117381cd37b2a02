package form

import (
	"errors"
	"fmt"
	"strings"

	"resume-builder/internal/model"
)

var (
	ErrUnknownField    = errors.New("unknown field")
	ErrInvalidValue    = errors.New("invalid value")
	ErrUnknownSkill    = errors.New("skill not in taxonomy")
	ErrEndDateLocked   = errors.New("end date is locked while the entry is current")
	ErrIndexOutOfRange = errors.New("entry index out of range")
)

// Field names one scalar input of the form.
type Field int

const (
	FieldName Field = iota + 1
	FieldTitle
	FieldEmail
	FieldPhone
	FieldLinkedinUsername
	FieldGithubUsername
	FieldPhoneIsWhatsapp
	FieldHasLinkedin
	FieldHasGithub
	FieldAbout
	FieldSoftSkills
	FieldDifferentiators
)

// Input names as the form and the wire format spell them.
var fieldNames = map[Field]string{
	FieldName:             "name",
	FieldTitle:            "title",
	FieldEmail:            "email",
	FieldPhone:            "phone",
	FieldLinkedinUsername: "linkedinUsername",
	FieldGithubUsername:   "githubUsername",
	FieldPhoneIsWhatsapp:  "phoneIsWhatsapp",
	FieldHasLinkedin:      "hasLinkedin",
	FieldHasGithub:        "hasGithub",
	FieldAbout:            "About",
	FieldSoftSkills:       "Soft Skills",
	FieldDifferentiators:  "Differentiators",
}

var fieldsByName = func() map[string]Field {
	m := make(map[string]Field, len(fieldNames))
	for f, n := range fieldNames {
		m[n] = f
	}
	return m
}()

// ParseField resolves an input name. Names are case sensitive.
func ParseField(name string) (Field, error) {
	f, ok := fieldsByName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return f, nil
}

func (f Field) String() string {
	if n, ok := fieldNames[f]; ok {
		return n
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

func (f Field) IsCheckbox() bool {
	return f == FieldPhoneIsWhatsapp || f == FieldHasLinkedin || f == FieldHasGithub
}

// IsSection reports whether f is one of the free-text sections.
func (f Field) IsSection() bool {
	return f == FieldAbout || f == FieldSoftSkills || f == FieldDifferentiators
}

// ParseBool accepts the values a checkbox input can submit.
func ParseBool(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "on", "yes":
		return true, nil
	case "false", "0", "off", "no", "":
		return false, nil
	}
	return false, fmt.Errorf("%w: %q is not a boolean", ErrInvalidValue, v)
}

func (f Field) apply(rec *model.ResumeRecord, value string) error {
	if f.IsCheckbox() {
		b, err := ParseBool(value)
		if err != nil {
			return err
		}
		switch f {
		case FieldPhoneIsWhatsapp:
			rec.PhoneIsWhatsapp = b
		case FieldHasLinkedin:
			rec.HasLinkedin = b
		case FieldHasGithub:
			rec.HasGithub = b
		}
		return nil
	}

	switch f {
	case FieldName:
		rec.Name = value
	case FieldTitle:
		rec.Title = value
	case FieldEmail:
		rec.Email = value
	case FieldPhone:
		rec.Phone = value
	case FieldLinkedinUsername:
		rec.LinkedinUsername = value
	case FieldGithubUsername:
		rec.GithubUsername = value
	case FieldAbout:
		rec.Sections.About = value
	case FieldSoftSkills:
		rec.Sections.SoftSkills = value
	case FieldDifferentiators:
		rec.Sections.Differentiators = value
	default:
		return fmt.Errorf("%w: %v", ErrUnknownField, f)
	}
	return nil
}

// ExperienceChange edits one field of an experience entry. The concrete
// types below are the only implementations.
type ExperienceChange interface {
	applyExperience(e *model.Experience) error
}

type (
	ExpCompany     string
	ExpTitle       string
	ExpStart       model.DatePair
	ExpEnd         model.EndDate
	ExpDescription string
	ExpIsCurrent   bool
)

func (c ExpCompany) applyExperience(e *model.Experience) error {
	e.Company = string(c)
	return nil
}

func (c ExpTitle) applyExperience(e *model.Experience) error {
	e.Title = string(c)
	return nil
}

func (c ExpStart) applyExperience(e *model.Experience) error {
	e.StartDate = model.DatePair(c)
	return nil
}

// Choosing the sentinel marks the entry current; a concrete date cannot be
// set while it is.
func (c ExpEnd) applyExperience(e *model.Experience) error {
	end := model.EndDate(c)
	if end.Current {
		e.EndDate = model.CurrentEnd()
		e.IsCurrent = true
		return nil
	}
	if e.IsCurrent {
		return ErrEndDateLocked
	}
	e.EndDate = end
	return nil
}

func (c ExpDescription) applyExperience(e *model.Experience) error {
	e.Description = string(c)
	return nil
}

func (c ExpIsCurrent) applyExperience(e *model.Experience) error {
	e.IsCurrent = bool(c)
	switch {
	case e.IsCurrent:
		e.EndDate = model.CurrentEnd()
	case e.EndDate.Current:
		e.EndDate = model.EndDate{}
	}
	return nil
}

// EducationChange edits one field of an education entry.
type EducationChange interface {
	applyEducation(e *model.Education) error
}

type (
	EduInstitution string
	EduDegree      string
	EduStart       model.DatePair
	EduEnd         model.EndDate
	EduDescription string
)

func (c EduInstitution) applyEducation(e *model.Education) error {
	e.Institution = string(c)
	return nil
}

func (c EduDegree) applyEducation(e *model.Education) error {
	e.Degree = string(c)
	return nil
}

func (c EduStart) applyEducation(e *model.Education) error {
	e.StartDate = model.DatePair(c)
	return nil
}

func (c EduEnd) applyEducation(e *model.Education) error {
	e.EndDate = model.EndDate(c)
	return nil
}

func (c EduDescription) applyEducation(e *model.Education) error {
	e.Description = string(c)
	return nil
}
