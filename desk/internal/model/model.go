package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

type MemberType string

const (
	Student MemberType = "Student"
	Faculty MemberType = "Faculty"
	Staff   MemberType = "Staff"
)

type Status string

const (
	Issued   Status = "Issued"
	Returned Status = "Returned"
)

type Book struct {
	ID        ID     `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Category  string `json:"category"`
	Quantity  int    `json:"quantity"`
	Available int    `json:"available"`
	Image     string `json:"image,omitempty"`
}

func (b Book) EntityID() ID { return b.ID }

type Member struct {
	ID     ID         `json:"id"`
	Name   string     `json:"name"`
	Email  string     `json:"email"`
	Type   MemberType `json:"type"`
	Joined Date       `json:"joined"`
	Photo  string     `json:"photo,omitempty"`
}

func (m Member) EntityID() ID { return m.ID }

type CirculationRecord struct {
	ID         ID     `json:"id"`
	BookID     ID     `json:"bookId"`
	MemberID   ID     `json:"memberId"`
	IssueDate  Date   `json:"issueDate"`
	DueDate    Date   `json:"dueDate"`
	ReturnDate *Date  `json:"returnDate"`
	Status     Status `json:"status"`
}

func (c CirculationRecord) EntityID() ID { return c.ID }

// Overdue holds for an open loan whose due day has passed. There is no grace period.
func (c CirculationRecord) Overdue(today Date) bool {
	return c.Status == Issued && c.DueDate.Before(today)
}

// Rating is a 1..5 star score. Older documents store it as a string.
type Rating int

func (r *Rating) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*r = 0
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return err
		}
		*r = Rating(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*r = Rating(n)
	return nil
}

type Review struct {
	ID       ID     `json:"id"`
	BookID   ID     `json:"bookId"`
	MemberID ID     `json:"memberId"`
	Rating   Rating `json:"rating"`
	Text     string `json:"text"`
	Date     Date   `json:"date"`
}

func (r Review) EntityID() ID { return r.ID }

type AdminConfig struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func DefaultAdminConfig() AdminConfig {
	return AdminConfig{Username: "admin", Password: "admin123"}
}

// Document is the whole persisted state. Every write replaces it entirely.
type Document struct {
	Books       []Book              `json:"books"`
	Members     []Member            `json:"members"`
	Circulation []CirculationRecord `json:"circulation"`
	AdminConfig *AdminConfig        `json:"adminConfig,omitempty"`
	Reviews     []Review            `json:"reviews"`
}

// Normalize replaces missing collections with empty ones so they serialize as [].
func (d *Document) Normalize() {
	if d.Books == nil {
		d.Books = []Book{}
	}
	if d.Members == nil {
		d.Members = []Member{}
	}
	if d.Circulation == nil {
		d.Circulation = []CirculationRecord{}
	}
	if d.Reviews == nil {
		d.Reviews = []Review{}
	}
}

// DefaultDocument is the seed dataset used until a stored document is loaded.
func DefaultDocument() Document {
	returned := NewDate(2026, 1, 20)
	admin := DefaultAdminConfig()
	return Document{
		Books: []Book{
			{ID: "101", Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Category: "Fiction", Quantity: 5, Available: 3},
			{ID: "102", Title: "Clean Code", Author: "Robert C. Martin", Category: "Technology", Quantity: 3, Available: 1},
			{ID: "103", Title: "Design Patterns", Author: "Erich Gamma", Category: "Technology", Quantity: 4, Available: 4},
		},
		Members: []Member{
			{ID: "M001", Name: "John Doe", Email: "john@example.com", Type: Student, Joined: NewDate(2025, 1, 10)},
			{ID: "M002", Name: "Jane Smith", Email: "jane@example.com", Type: Faculty, Joined: NewDate(2025, 1, 15)},
		},
		Circulation: []CirculationRecord{
			{ID: "1", BookID: "102", MemberID: "M001", IssueDate: NewDate(2026, 1, 20), DueDate: NewDate(2026, 2, 3), Status: Issued},
			{ID: "2", BookID: "101", MemberID: "M001", IssueDate: NewDate(2026, 1, 10), DueDate: NewDate(2026, 1, 24), ReturnDate: &returned, Status: Returned},
		},
		AdminConfig: &admin,
		Reviews:     []Review{},
	}
}
