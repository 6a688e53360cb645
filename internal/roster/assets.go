package roster

import (
	"regexp"
	"strings"
)

// The sheet is fetched with FORMULA render option, so image cells arrive as
// =IMAGE("...") formulas, bare URLs, or inline data URIs.
var (
	imageFormulaRe = regexp.MustCompile(`=IMAGE\("([^"]+)"(?:,[^)]+)?\)`)
	driveFileRe    = regexp.MustCompile(`/file/d/([a-zA-Z0-9-_]+)`)
	driveOpenIDRe  = regexp.MustCompile(`[?&]id=([a-zA-Z0-9-_]+)`)
)

const driveThumbnailURL = "https://drive.google.com/thumbnail?id=%ID%&sz=w400"

// NormalizeAsset converts a heterogeneous spreadsheet cell value into a
// single displayable image reference. It returns "" for anything it cannot
// recognize and never errors; no network access happens here.
func NormalizeAsset(cellValue string) string {
	trimmed := strings.TrimSpace(cellValue)
	if trimmed == "" {
		return ""
	}

	if strings.HasPrefix(trimmed, "=IMAGE(") {
		match := imageFormulaRe.FindStringSubmatch(trimmed)
		if len(match) < 2 {
			return ""
		}
		url := match[1]
		if strings.Contains(url, "drive.google.com") {
			if thumb := driveThumbnail(url); thumb != "" {
				return thumb
			}
		}
		return url
	}

	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		if strings.Contains(trimmed, "drive.google.com") {
			if thumb := driveThumbnail(trimmed); thumb != "" {
				return thumb
			}
		}
		return trimmed
	}

	if strings.HasPrefix(trimmed, "data:") {
		return trimmed
	}

	return ""
}

// driveThumbnail rewrites a Drive file/view or open-by-id share link to the
// thumbnail service, which renders reliably in <img> tags. Returns "" when
// no file id can be extracted.
func driveThumbnail(url string) string {
	if m := driveFileRe.FindStringSubmatch(url); len(m) == 2 {
		return strings.Replace(driveThumbnailURL, "%ID%", m[1], 1)
	}
	if m := driveOpenIDRe.FindStringSubmatch(url); len(m) == 2 {
		return strings.Replace(driveThumbnailURL, "%ID%", m[1], 1)
	}
	return ""
}
