package jira

import (
	"regexp"
	"strings"

	"jtui/internal/domain"
)

// Parsers for jira-cli's plain output mode (--plain). Pure functions of
// text in, typed data out; they never re-invoke the runner. Individual
// malformed lines are skipped, but finding zero well-formed records where
// at least one was expected is a ParseError so callers can distinguish
// "no data" from "broken output".

// issueKeyRe matches project-prefixed issue keys such as PROJ-123
var issueKeyRe = regexp.MustCompile(`^[A-Z][A-Z0-9]*-[0-9]+$`)

// ParseIssueList parses `issue list --plain` output. Expected shape: one
// issue per line, tab-separated columns TYPE, KEY, SUMMARY, STATUS and
// optionally ASSIGNEE (the caller requests exactly those via --columns).
// A header row, when present, is recognized by its KEY column not being a
// valid issue key.
func ParseIssueList(raw string) ([]domain.IssueSummary, error) {
	var issues []domain.IssueSummary

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 4 {
			continue
		}

		summary := domain.IssueSummary{
			Type:   strings.TrimSpace(fields[0]),
			Key:    strings.TrimSpace(fields[1]),
			Title:  strings.TrimSpace(fields[2]),
			Status: strings.TrimSpace(fields[3]),
		}
		if len(fields) > 4 {
			summary.Assignee = strings.TrimSpace(fields[4])
		}

		// Skips headers and any decorative rows
		if !issueKeyRe.MatchString(summary.Key) {
			continue
		}

		issues = append(issues, summary)
	}

	if len(issues) == 0 {
		return nil, &domain.ParseError{Kind: domain.ParseEmptyOrUnrecognized, Hint: "no issue rows found"}
	}
	return issues, nil
}

// commentHeaderRe matches the "Comment by <author> on <timestamp>:" lines
// that introduce each comment in plain detail output
var commentHeaderRe = regexp.MustCompile(`^Comment by (.+?) on (.+?):\s*$`)

// labeledLine splits "Status: In Progress" style metadata lines
func labeledLine(line, label string) (string, bool) {
	if rest, ok := strings.CutPrefix(line, label+":"); ok {
		return strings.TrimSpace(rest), true
	}
	return "", false
}

// ParseIssueDetail parses `issue view <KEY> --plain` output. Expected shape:
// a header line "KEY: title", labeled Type/Status/Assignee lines, an
// optional description block after "Description:", and zero or more
// comments each introduced by "Comment by <author> on <ts>:". Lines that
// match nothing are treated as description or comment body depending on
// the current section.
func ParseIssueDetail(raw string) (domain.IssueDetail, error) {
	var detail domain.IssueDetail
	var descLines []string
	var current *domain.Comment

	const (
		sectHeader = iota
		sectDescription
		sectComments
	)
	section := sectHeader

	flushComment := func() {
		if current != nil {
			current.Body = strings.TrimSpace(current.Body)
			detail.Comments = append(detail.Comments, *current)
			current = nil
		}
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimSpace(line)

		if m := commentHeaderRe.FindStringSubmatch(trimmed); m != nil {
			flushComment()
			section = sectComments
			current = &domain.Comment{Author: m[1], Timestamp: m[2]}
			continue
		}

		switch section {
		case sectHeader:
			if detail.Key == "" {
				if key, title, ok := splitKeyTitle(trimmed); ok {
					detail.Key = key
					detail.Title = title
					continue
				}
			}
			if v, ok := labeledLine(trimmed, "Type"); ok {
				detail.Type = v
				continue
			}
			if v, ok := labeledLine(trimmed, "Status"); ok {
				detail.Status = v
				continue
			}
			if v, ok := labeledLine(trimmed, "Assignee"); ok {
				detail.Assignee = v
				continue
			}
			if trimmed == "Description:" {
				section = sectDescription
				continue
			}
		case sectDescription:
			descLines = append(descLines, line)
		case sectComments:
			if current != nil {
				if current.Body != "" {
					current.Body += "\n"
				}
				current.Body += line
			}
		}
	}
	flushComment()

	if detail.Key == "" {
		return domain.IssueDetail{}, &domain.ParseError{Kind: domain.ParseEmptyOrUnrecognized, Hint: "no issue header found"}
	}

	detail.Description = strings.TrimSpace(strings.Join(descLines, "\n"))
	return detail, nil
}

// splitKeyTitle parses a "PROJ-1: title" or "PROJ-1 title" header line
func splitKeyTitle(line string) (string, string, bool) {
	key, rest, found := strings.Cut(line, ":")
	if !found {
		key, rest, _ = strings.Cut(line, " ")
	}
	key = strings.TrimSpace(key)
	if !issueKeyRe.MatchString(key) {
		return "", "", false
	}
	return key, strings.TrimSpace(rest), true
}

// ParseIdentity parses `jira me` output: the authenticated account, a
// single line such as an email address. Returns a ParseError when no
// identity-looking line is present.
func ParseIdentity(raw string) (string, error) {
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		// One token, no embedded whitespace; good enough for an account id
		if !strings.ContainsAny(trimmed, " \t") {
			return trimmed, nil
		}
	}
	return "", &domain.ParseError{Kind: domain.ParseEmptyOrUnrecognized, Hint: "no identity in output"}
}
