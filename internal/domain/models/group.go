// internal/domain/models/group.go
package models

// Access levels a group can hold on consultation documents.
const (
	AccessFull     = "full"
	AccessStandard = "standard"
	AccessReadOnly = "read-only"
)

// AccessLevels lists every known access level.
var AccessLevels = []string{AccessFull, AccessStandard, AccessReadOnly}

// MemberPreviewLimit bounds how many members a group card shows.
const MemberPreviewLimit = 4

// Group is a named set of participants with an access level governing what
// they may do with consultation documents.
//
// NOTE:
//   - MemberCount is the full head count; Members is only a preview and may
//     be shorter.
type Group struct {
	ID                  string   `bson:"_id" json:"id" yaml:"id"`
	Position            int      `bson:"position" json:"position" yaml:"-"`
	Name                string   `bson:"name" json:"name" yaml:"name"`
	Description         string   `bson:"description" json:"description" yaml:"description"`
	MemberCount         int      `bson:"member_count" json:"member_count" yaml:"member_count"`
	ActiveConsultations int      `bson:"active_consultations" json:"active_consultations" yaml:"active_consultations"`
	AccessLevel         string   `bson:"access_level" json:"access_level" yaml:"access_level"`
	LastActivity        string   `bson:"last_activity" json:"last_activity" yaml:"last_activity"`
	Members             []Member `bson:"members" json:"members" yaml:"members"`
}

// Member is one entry in a group's member preview.
type Member struct {
	Name     string `bson:"name" json:"name" yaml:"name"`
	Role     string `bson:"role" json:"role" yaml:"role"`
	Email    string `bson:"email" json:"email" yaml:"email"`
	Initials string `bson:"initials" json:"initials" yaml:"initials"`
}

// PreviewMembers returns at most MemberPreviewLimit members.
func (g Group) PreviewMembers() []Member {
	if len(g.Members) <= MemberPreviewLimit {
		return g.Members
	}
	return g.Members[:MemberPreviewLimit]
}

// OverflowCount is the number shown in the "+N" badge after the preview.
// It is zero when the group has no more members than the preview limit.
func (g Group) OverflowCount() int {
	if g.MemberCount <= MemberPreviewLimit {
		return 0
	}
	return g.MemberCount - MemberPreviewLimit
}

// GroupOption is a consultation group as offered by the group selector.
type GroupOption struct {
	ID          string
	Name        string
	MemberCount int
}

// Option returns the selector entry for g.
func (g Group) Option() GroupOption {
	return GroupOption{ID: g.ID, Name: g.Name, MemberCount: g.MemberCount}
}
