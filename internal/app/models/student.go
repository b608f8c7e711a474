package models

// GuardianInfo holds a student's guardian contact details.
type GuardianInfo struct {
	Name     string `bson:"name,omitempty" json:"name,omitempty"`
	Phone    string `bson:"phone,omitempty" json:"phone,omitempty"`
	Relation string `bson:"relation,omitempty" json:"relation,omitempty"`
}

// Student defines a student profile in the 'student' collection. The
// user_id field references the account document; the link is logical
// only, nothing enforces it.
type Student struct {
	UserID            string                 `bson:"user_id" json:"user_id" binding:"required"`
	DOB               string                 `bson:"dob,omitempty" json:"dob,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Phone             string                 `bson:"phone,omitempty" json:"phone,omitempty"`
	Address           string                 `bson:"address,omitempty" json:"address,omitempty"`
	GuardianInfo      *GuardianInfo          `bson:"guardian_info,omitempty" json:"guardian_info,omitempty"`
	AdditionalDetails map[string]interface{} `bson:"additional_details,omitempty" json:"additional_details,omitempty"`
	Documents         []map[string]interface{} `bson:"documents,omitempty" json:"documents,omitempty"`
}
