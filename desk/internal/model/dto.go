package model

type IssueRequest struct {
	BookID    ID   `json:"bookId" validate:"required"`
	MemberID  ID   `json:"memberId" validate:"required"`
	IssueDate Date `json:"issueDate"`
	DueDate   Date `json:"dueDate"`
}

type ScanRequest struct {
	BookID ID `json:"bookId" validate:"required"`
}

type BookCreate struct {
	Title    string `json:"title" validate:"required"`
	Author   string `json:"author" validate:"required"`
	Category string `json:"category" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=0"`
	Image    string `json:"image"`
}

// BookUpdate edits a book. An empty Image keeps the current cover.
type BookUpdate struct {
	Title    string `json:"title" validate:"required"`
	Author   string `json:"author" validate:"required"`
	Category string `json:"category" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=0"`
	Image    string `json:"image"`
}

type MemberCreate struct {
	Name  string     `json:"name" validate:"required"`
	Email string     `json:"email" validate:"required,email"`
	Type  MemberType `json:"type" validate:"required,oneof=Student Faculty Staff"`
	Photo string     `json:"photo"`
}

// MemberUpdate edits a member. An empty Photo keeps the current one.
type MemberUpdate struct {
	Name  string     `json:"name" validate:"required"`
	Email string     `json:"email" validate:"required,email"`
	Type  MemberType `json:"type" validate:"required,oneof=Student Faculty Staff"`
	Photo string     `json:"photo"`
}

type BookImportRow struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}

type MemberImportRow struct {
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Type  MemberType `json:"type"`
}

type ImportResult struct {
	Imported int `json:"imported"`
}

type ReviewCreate struct {
	BookID ID     `json:"bookId" validate:"required"`
	Rating Rating `json:"rating" validate:"min=1,max=5"`
	Text   string `json:"text" validate:"required"`
}

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type MemberLoginRequest struct {
	MemberID ID `json:"memberId" validate:"required"`
}

type AdminConfigRequest struct {
	Username        string `json:"username"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

type TokenResponse struct {
	Token    string `json:"token"`
	Role     string `json:"role"`
	MemberID ID     `json:"memberId,omitempty"`
}

type ReturnResult struct {
	Record    CirculationRecord `json:"record"`
	Available int               `json:"available"`
	Warning   string            `json:"warning,omitempty"`
}

type ScanCandidate struct {
	CirculationID ID     `json:"circulationId"`
	MemberID      ID     `json:"memberId"`
	MemberName    string `json:"memberName"`
	DueDate       Date   `json:"dueDate"`
	Overdue       bool   `json:"overdue"`
}

// ScanResult holds either the completed return or the candidates to pick from.
type ScanResult struct {
	Returned   *ReturnResult   `json:"returned,omitempty"`
	Candidates []ScanCandidate `json:"candidates,omitempty"`
}

type BookStatus struct {
	Book      Book    `json:"book"`
	IsIssued  bool    `json:"isIssued"`
	Holder    *Member `json:"holder,omitempty"`
	IssueDate *Date   `json:"issueDate,omitempty"`
	DueDate   *Date   `json:"dueDate,omitempty"`
	Overdue   bool    `json:"overdue"`
}

type EditBookResult struct {
	Book    Book   `json:"book"`
	Warning string `json:"warning,omitempty"`
}

type CirculationView struct {
	CirculationRecord
	BookTitle  string `json:"bookTitle"`
	MemberName string `json:"memberName"`
	Overdue    bool   `json:"overdue"`
}

type ReviewView struct {
	Review
	BookTitle  string `json:"bookTitle"`
	MemberName string `json:"memberName"`
}

type AdminDashboard struct {
	TotalBooks         int               `json:"totalBooks"`
	IssuedBooks        int               `json:"issuedBooks"`
	Overdue            int               `json:"overdue"`
	TotalMembers       int               `json:"totalMembers"`
	TotalReviews       int               `json:"totalReviews"`
	RecentTransactions []CirculationView `json:"recentTransactions"`
	Reviews            []ReviewView      `json:"reviews"`
}

type ActiveLoan struct {
	CirculationView
	DaysLeft int `json:"daysLeft"`
}

type HistoryEntry struct {
	CirculationView
	Review *Review `json:"review,omitempty"`
}

type MemberDashboard struct {
	Member  Member         `json:"member"`
	Active  []ActiveLoan   `json:"active"`
	History []HistoryEntry `json:"history"`
}

type BooksImportRequest struct {
	Rows []BookImportRow `json:"rows" validate:"required"`
}

type MembersImportRequest struct {
	Rows []MemberImportRow `json:"rows" validate:"required"`
}
