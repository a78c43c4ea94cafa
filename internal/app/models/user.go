package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Password string `json:"-" db:"password"` // bcrypt hash, never serialized
	ClassID  int64  `json:"classId" db:"class_id"`
	Dept     string `json:"dept" db:"dept"`
}

// Teacher defines the teacher model based on the 'teachers' table
type Teacher struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Password string `json:"-" db:"password"`
	ClassID  int64  `json:"classId" db:"class_id"`
	Dept     string `json:"dept" db:"dept"`
}

// Organizer defines the organizer model based on the 'organizers' table
type Organizer struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Password string `json:"-" db:"password"`
	ClubName string `json:"clubName" db:"club_name"`
}

// Admin defines the admin model based on the 'admins' table
type Admin struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Password string `json:"-" db:"password"`
}
