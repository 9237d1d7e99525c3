package models

import "time"

// Amenity is a bookable shared facility of the building. The catalog is
// seeded at startup and only its booking list grows during a session.
type Amenity struct {
	ID          string `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
	Hours       string `json:"hours" bson:"hours"` // "HH:MM-HH:MM", whole hours
	Capacity    int    `json:"capacity" bson:"capacity"`
}

// Booking statuses. The core flow only ever writes "confirmed"; pending and
// cancelled exist for the status-update endpoint.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

type Booking struct {
	ID        string `json:"id" bson:"id"`
	AmenityID string `json:"amenityId" bson:"amenityId"`
	Date      string `json:"date" bson:"date"` // YYYY-MM-DD
	StartHour int    `json:"startHour" bson:"startHour"`
	EndHour   int    `json:"endHour" bson:"endHour"`
	Unit      string `json:"unit" bson:"unit"`
	Name      string `json:"name" bson:"name"`
	People    int    `json:"people" bson:"people"`
	UserID    string `json:"userId" bson:"userId"`
	Status    string `json:"status" bson:"status"`
	CreatedAt int64  `json:"createdAt" bson:"createdAt"`
}

// TimeSlot is derived per request by the availability calculator, never
// stored.
type TimeSlot struct {
	Hour      int    `json:"hour"`
	Start     string `json:"start"` // "HH:00"
	Available bool   `json:"available"`
}

// Incident estados.
const (
	IncidentOpen       = "abierta"
	IncidentInProgress = "en_progreso"
	IncidentResolved   = "resuelta"
)

// Incident is the one resource the original backend served itself; it lives
// in an in-memory map keyed by an auto-incrementing integer id.
type Incident struct {
	ID           int    `json:"id"`
	Titulo       string `json:"titulo"`
	Descripcion  string `json:"descripcion"`
	Fecha        string `json:"fecha"`
	Estado       string `json:"estado"`
	Departamento string `json:"departamento"`
}

const (
	FinePending  = "pending"
	FinePaid     = "paid"
	FineAppealed = "appealed"
)

type Fine struct {
	ID        string `json:"id" bson:"id"`
	Unit      string `json:"unit" bson:"unit"`
	Reason    string `json:"reason" bson:"reason"`
	Amount    int64  `json:"amount" bson:"amount"` // cents
	Status    string `json:"status" bson:"status"`
	IssuedBy  string `json:"issuedBy" bson:"issuedBy"`
	CreatedAt int64  `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64  `json:"updatedAt" bson:"updatedAt"`
}

type Payment struct {
	ID        string `json:"id" bson:"id"`
	Unit      string `json:"unit" bson:"unit"`
	UserID    string `json:"userId" bson:"userId"`
	Concept   string `json:"concept" bson:"concept"`
	Amount    int64  `json:"amount" bson:"amount"` // cents
	Status    string `json:"status" bson:"status"` // pending, paid
	Method    string `json:"method,omitempty" bson:"method,omitempty"`
	PaidAt    int64  `json:"paidAt,omitempty" bson:"paidAt,omitempty"`
	CreatedAt int64  `json:"createdAt" bson:"createdAt"`
}

const (
	VisitExpected = "expected"
	VisitInside   = "inside"
	VisitLeft     = "left"
)

type Visit struct {
	ID          string `json:"id" bson:"id"`
	Unit        string `json:"unit" bson:"unit"`
	VisitorName string `json:"visitorName" bson:"visitorName"`
	DocumentID  string `json:"documentId,omitempty" bson:"documentId,omitempty"`
	Date        string `json:"date" bson:"date"`
	EntryTime   int64  `json:"entryTime,omitempty" bson:"entryTime,omitempty"`
	ExitTime    int64  `json:"exitTime,omitempty" bson:"exitTime,omitempty"`
	Status      string `json:"status" bson:"status"`
	CreatedAt   int64  `json:"createdAt" bson:"createdAt"`
}

type Provider struct {
	ID        string `json:"id" bson:"id"`
	Name      string `json:"name" bson:"name"`
	Service   string `json:"service" bson:"service"`
	Phone     string `json:"phone,omitempty" bson:"phone,omitempty"`
	Email     string `json:"email,omitempty" bson:"email,omitempty"`
	Active    bool   `json:"active" bson:"active"`
	CreatedAt int64  `json:"createdAt" bson:"createdAt"`
}

type Announcement struct {
	ID        string `json:"id" bson:"id"`
	Title     string `json:"title" bson:"title"`
	Body      string `json:"body" bson:"body"`
	Category  string `json:"category,omitempty" bson:"category,omitempty"`
	Pinned    bool   `json:"pinned" bson:"pinned"`
	AuthorID  string `json:"authorId" bson:"authorId"`
	Banner    string `json:"banner,omitempty" bson:"banner,omitempty"`
	CreatedAt int64  `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64  `json:"updatedAt" bson:"updatedAt"`
}

type Document struct {
	ID         string `json:"id" bson:"id"`
	Title      string `json:"title" bson:"title"`
	Category   string `json:"category,omitempty" bson:"category,omitempty"`
	FileName   string `json:"fileName" bson:"fileName"`
	Size       int64  `json:"size" bson:"size"`
	UploadedBy string `json:"uploadedBy" bson:"uploadedBy"`
	CreatedAt  int64  `json:"createdAt" bson:"createdAt"`
}

type User struct {
	UserID        string    `json:"userid" bson:"userid"`
	Username      string    `json:"username" bson:"username"`
	Email         string    `json:"email" bson:"email"`
	Unit          string    `json:"unit,omitempty" bson:"unit,omitempty"`
	Password      string    `json:"password,omitempty" bson:"password"`
	Role          []string  `json:"role" bson:"role"`
	EmailVerified bool      `json:"email_verified" bson:"email_verified"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
	LastLogin     time.Time `json:"last_login,omitempty" bson:"last_login,omitempty"`
}

// Index is the shape published on the events channel when an entity changes.
type Index struct {
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityId   string `json:"entity_id"`
	ItemId     string `json:"item_id"`
	ItemType   string `json:"item_type"`
}
