package config

import "time"

// Application settings.
const (
	AppName        = "sitediary"
	ConfigFileName = "config.yaml"
	LogFileName    = "sitediary.log"
	ReportName     = "Site_Diary_Log"
	ReportTitle    = "Site Diary Verification Log"
	SheetName      = "Verification Log"

	// PlaceholderName is the hint shown in the verifier name field. Saving
	// under it is refused.
	PlaceholderName = "Your Name"

	AutoLockAfter = 15 * time.Minute
)

// Project numbers and the scheme each one belongs to.
var ProjectNumbers = []string{"LT037", "LT359"}

var schemes = map[string]string{
	"LT037": "Beauly to Blackhillock",
	"LT359": "Blackhillock to Peterhead",
}

// GI packages and the subcontractor holding each one.
var GIPackages = []string{"Package 1", "Package 2", "Package 3", "Package 4", "Package 5"}

var subcontractors = map[string]string{
	"Package 1": "Natural Power",
	"Package 2": "CGL",
	"Package 3": "IGNE",
	"Package 4": "CGL",
	"Package 5": "IGNE",
}

// Scheme returns the scheme name for a project number, or "" if unknown.
func Scheme(projectNo string) string {
	return schemes[projectNo]
}

// Subcontractor returns the subcontractor for a GI package, or "" if unknown.
func Subcontractor(pkg string) string {
	return subcontractors[pkg]
}

// ChecklistQuestions are asked for every report, in display order.
var ChecklistQuestions = []string{
	"Time records are consistent and realistic",
	"Activities align with project schedule and scope",
	"Equipment lists are accurate and complete",
	"Personnel records match expected crew",
	"Weather conditions are appropriately recorded",
	"Safety activities (toolbox talks, briefings) are documented",
	"Progress notes are detailed and accurate",
	"All required signatures are present",
}

// SignOffRoles are the roles listed in the sign-off block.
var SignOffRoles = []string{"Site Engineer"}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func IsProjectNumber(v string) bool { return contains(ProjectNumbers, v) }
func IsGIPackage(v string) bool     { return contains(GIPackages, v) }
func IsChecklistQuestion(v string) bool {
	return contains(ChecklistQuestions, v)
}
