package icd

// Level identifies a record's position in the ICD-10 hierarchy.
type Level string

const (
	LevelChapter  Level = "chapter"
	LevelBlock    Level = "block"
	LevelCategory Level = "category"
)

// Versions lists the ICD-10 releases available on the WHO browser.
var Versions = []int{2019, 2016, 2015, 2014, 2010, 2008}

// SupportedVersion reports whether v is one of the published releases.
func SupportedVersion(v int) bool {
	for _, version := range Versions {
		if v == version {
			return true
		}
	}
	return false
}

// Failure describes a fetch that did not yield a scraped item. Status holds
// the HTTP status code, or 0 when the request never produced a response.
type Failure struct {
	Status int    `json:"status"`
	Reason string `json:"reason"`
}

// Record is one item of the classification hierarchy. A record either
// carries a scraped code and description, or a non-nil Failure marking the
// key it was fetched for as failed.
type Record struct {
	Level       Level    `json:"level"`
	ParentCode  string   `json:"parent_code,omitempty"`
	Code        string   `json:"code,omitempty"`
	Description string   `json:"description,omitempty"`
	Failure     *Failure `json:"failure,omitempty"`
}

// Failed reports whether the record marks a failed fetch.
func (r Record) Failed() bool { return r.Failure != nil }
