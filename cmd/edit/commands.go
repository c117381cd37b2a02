package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"resume-builder/internal/form"
	"resume-builder/internal/model"
)

const helpText = `commands:
  set <field>=<value>            name, title, email, phone, linkedinUsername, githubUsername,
                                 phoneIsWhatsapp, hasLinkedin, hasGithub, About, Soft Skills, Differentiators
  skill <category> | <subcategory> | <label>   toggle a skill
  exp <i> <field> <value>        company, title, start, end, description, current
  edu <i> <field> <value>        institution, degree, start, end, description
  add exp|edu                    append a blank entry
  rm exp|edu <i>                 remove an entry
  show                           print the current record
  quit
dates are MM/YYYY; an end date may also be Current`

var errUsage = errors.New("usage")

// execute applies one command line to h. It reports whether the loop should
// stop.
func execute(line string, h *form.Holder, w io.Writer) (bool, error) {
	cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "":
		return false, nil
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprintln(w, helpText)
		return false, nil
	case "show":
		b, err := json.MarshalIndent(h.Snapshot(), "", "  ")
		if err != nil {
			return false, err
		}
		fmt.Fprintln(w, string(b))
		return false, nil
	case "set":
		name, value, ok := strings.Cut(rest, "=")
		if !ok {
			return false, fmt.Errorf("%w: set <field>=<value>", errUsage)
		}
		return false, h.SetField(strings.TrimSpace(name), value)
	case "skill":
		parts := strings.Split(rest, "|")
		if len(parts) != 3 {
			return false, fmt.Errorf("%w: skill <category> | <subcategory> | <label>", errUsage)
		}
		return false, h.ToggleSkill(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), strings.TrimSpace(parts[2]))
	case "exp", "edu":
		idx, field, value, err := entryArgs(rest)
		if err != nil {
			return false, err
		}
		if cmd == "exp" {
			change, err := experienceChange(field, value)
			if err != nil {
				return false, err
			}
			return false, h.SetExperienceField(idx, change)
		}
		change, err := educationChange(field, value)
		if err != nil {
			return false, err
		}
		return false, h.SetEducationField(idx, change)
	case "add":
		switch rest {
		case "exp":
			fmt.Fprintf(w, "experience #%d added\n", h.AddExperienceEntry())
		case "edu":
			fmt.Fprintf(w, "education #%d added\n", h.AddEducationEntry())
		default:
			return false, fmt.Errorf("%w: add exp|edu", errUsage)
		}
		return false, nil
	case "rm":
		list, arg, _ := strings.Cut(rest, " ")
		idx, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			return false, fmt.Errorf("%w: rm exp|edu <i>", errUsage)
		}
		switch list {
		case "exp":
			return false, h.RemoveExperienceEntry(idx)
		case "edu":
			return false, h.RemoveEducationEntry(idx)
		}
		return false, fmt.Errorf("%w: rm exp|edu <i>", errUsage)
	}
	return false, fmt.Errorf("unknown command %q (try help)", cmd)
}

func entryArgs(rest string) (int, string, string, error) {
	fields := strings.SplitN(rest, " ", 3)
	if len(fields) < 2 {
		return 0, "", "", fmt.Errorf("%w: <i> <field> <value>", errUsage)
	}
	idx, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, "", "", fmt.Errorf("%w: entry index %q", errUsage, fields[0])
	}
	value := ""
	if len(fields) == 3 {
		value = fields[2]
	}
	return idx, fields[1], value, nil
}

func experienceChange(field, value string) (form.ExperienceChange, error) {
	switch field {
	case "company":
		return form.ExpCompany(value), nil
	case "title":
		return form.ExpTitle(value), nil
	case "description":
		return form.ExpDescription(value), nil
	case "start":
		d, err := parseDate(value)
		return form.ExpStart(d), err
	case "end":
		d, err := parseEndDate(value)
		return form.ExpEnd(d), err
	case "current":
		b, err := form.ParseBool(value)
		return form.ExpIsCurrent(b), err
	}
	return nil, fmt.Errorf("%w: experience field %q", form.ErrUnknownField, field)
}

func educationChange(field, value string) (form.EducationChange, error) {
	switch field {
	case "institution":
		return form.EduInstitution(value), nil
	case "degree":
		return form.EduDegree(value), nil
	case "description":
		return form.EduDescription(value), nil
	case "start":
		d, err := parseDate(value)
		return form.EduStart(d), err
	case "end":
		d, err := parseEndDate(value)
		return form.EduEnd(d), err
	}
	return nil, fmt.Errorf("%w: education field %q", form.ErrUnknownField, field)
}

// parseDate reads MM/YYYY. An empty value clears the date.
func parseDate(v string) (model.DatePair, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return model.DatePair{}, nil
	}
	month, year, ok := strings.Cut(v, "/")
	m, errM := strconv.Atoi(month)
	_, errY := strconv.Atoi(year)
	if !ok || errM != nil || errY != nil || m < 1 || m > 12 || len(year) != 4 {
		return model.DatePair{}, fmt.Errorf("%w: date %q is not MM/YYYY", form.ErrInvalidValue, v)
	}
	return model.DatePair{Month: fmt.Sprintf("%02d", m), Year: year}, nil
}

func parseEndDate(v string) (model.EndDate, error) {
	if strings.EqualFold(strings.TrimSpace(v), model.CurrentSentinel) {
		return model.CurrentEnd(), nil
	}
	d, err := parseDate(v)
	return model.EndDate{DatePair: d}, err
}
