package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type ListQuery struct {
	Search string `json:"search" validate:"max=100"`
}

type DoctorListQuery struct {
	Search      string `json:"search" validate:"max=100"`
	SpecialtyID string `json:"specialty" validate:"omitempty,uuid"`
	DiseaseID   string `json:"disease" validate:"omitempty,uuid"`
}

type PopularSearchQuery struct {
	Listing string `json:"listing" validate:"required,oneof=specialties diseases doctors pharmacies"`
	Limit   int    `json:"limit" validate:"gte=1,lte=50"`
}

// Response DTOs

type CategoryResponse struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Path        string `json:"path"`
}

type SpecialtyResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Icon        string    `json:"icon"`
	DoctorCount int64     `json:"doctor_count"`
	DoctorsPath string    `json:"doctors_path"`
}

type SpecialtyListResponse struct {
	Specialties []SpecialtyResponse `json:"specialties"`
	Total       int                 `json:"total"`
	Search      string              `json:"search"`
}

type DiseaseResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	SpecialtyID   uuid.UUID `json:"specialty_id"`
	SpecialtyName string    `json:"specialty_name,omitempty"`
	DoctorsPath   string    `json:"doctors_path"`
}

type DiseaseListResponse struct {
	Diseases []DiseaseResponse `json:"diseases"`
	Total    int               `json:"total"`
	Search   string            `json:"search"`
}

// SpecialtySummary is the joined specialty shown on a doctor card
type SpecialtySummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Icon string    `json:"icon"`
}

type DoctorResponse struct {
	ID          uuid.UUID         `json:"id"`
	FirstName   string            `json:"first_name"`
	LastName    string            `json:"last_name"`
	FullName    string            `json:"full_name"`
	Initials    string            `json:"initials"`
	Photo       *string           `json:"photo"`
	Specialty   *SpecialtySummary `json:"specialty,omitempty"`
	Hospital    string            `json:"hospital"`
	Address     string            `json:"address"`
	PhoneNumber string            `json:"phone_number"`
	Description *string           `json:"description"`
	DetailPath  string            `json:"detail_path"`
}

type DoctorDetailResponse struct {
	DoctorResponse
	CallURI     string `json:"call_uri"`
	WhatsAppURL string `json:"whatsapp_url"`
}

type DoctorListResponse struct {
	Doctors     []DoctorResponse `json:"doctors"`
	Total       int              `json:"total"`
	Search      string           `json:"search"`
	SpecialtyID *uuid.UUID       `json:"specialty_id,omitempty"`
	DiseaseID   *uuid.UUID       `json:"disease_id,omitempty"`
}

type PharmacyResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	PhoneNumber  string    `json:"phone_number"`
	OpeningHours *string   `json:"opening_hours"`
	Is24h        bool      `json:"is_24h"`
	CallURI      string    `json:"call_uri"`
}

type PharmacyListResponse struct {
	Pharmacies []PharmacyResponse `json:"pharmacies"`
	Total      int                `json:"total"`
	Search     string             `json:"search"`
}

type SearchTermResponse struct {
	Term  string `json:"term"`
	Count int64  `json:"count"`
}

type PopularSearchResponse struct {
	Listing string               `json:"listing"`
	Terms   []SearchTermResponse `json:"terms"`
}
