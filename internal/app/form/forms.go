package form

import (
	"campus_portal/internal/domain/model"
	"campus_portal/internal/platform/campus"

	"github.com/go-playground/validator/v10"
)

type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserCreateForm struct {
	FirstName  string `json:"firstName" validate:"required,min=2,max=50"`
	LastName   string `json:"lastName" validate:"required,min=2,max=50"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Role       string `json:"role" validate:"required,oneof=admin faculty student"`
	Department string `json:"department" validate:"omitempty,max=100"`
}

func (f UserCreateForm) Request() campus.CreateUserRequest {
	return campus.CreateUserRequest{
		FirstName:  f.FirstName,
		LastName:   f.LastName,
		Email:      f.Email,
		Password:   f.Password,
		Role:       f.Role,
		Department: f.Department,
	}
}

type UserUpdateForm struct {
	FirstName  string `json:"firstName" validate:"omitempty,min=2,max=50"`
	LastName   string `json:"lastName" validate:"omitempty,min=2,max=50"`
	Role       string `json:"role" validate:"omitempty,oneof=admin faculty student"`
	Department string `json:"department" validate:"omitempty,max=100"`
}

func (f UserUpdateForm) Request() campus.UpdateUserRequest {
	return campus.UpdateUserRequest{
		FirstName:  f.FirstName,
		LastName:   f.LastName,
		Role:       f.Role,
		Department: f.Department,
	}
}

type ResetPasswordForm struct {
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

type EventLocationForm struct {
	Venue   string `json:"venue" validate:"required"`
	Room    string `json:"room"`
	Address string `json:"address"`
}

type EventForm struct {
	Title       string            `json:"title" validate:"required,min=3,max=200"`
	Description string            `json:"description" validate:"required"`
	EventType   string            `json:"eventType" validate:"required"`
	StartDate   Date              `json:"startDate"`
	EndDate     Date              `json:"endDate"`
	Location    EventLocationForm `json:"location"`
	Capacity    int               `json:"capacity" validate:"gte=0"`
	ImageURL    string            `json:"imageUrl"`
}

func eventFormValidation(sl validator.StructLevel) {
	f := sl.Current().Interface().(EventForm)
	if f.StartDate.IsZero() {
		sl.ReportError(f.StartDate, "startDate", "StartDate", "required", "")
	}
	if f.EndDate.IsZero() {
		sl.ReportError(f.EndDate, "endDate", "EndDate", "required", "")
	} else if !f.StartDate.IsZero() && !f.EndDate.After(f.StartDate.Time) {
		sl.ReportError(f.EndDate, "endDate", "EndDate", endAfterStartTag, "")
	}
}

func (f EventForm) Request() campus.EventRequest {
	return campus.EventRequest{
		Title:       f.Title,
		Description: f.Description,
		EventType:   f.EventType,
		StartDate:   f.StartDate.Time,
		EndDate:     f.EndDate.Time,
		Location: model.EventLocation{
			Venue:   f.Location.Venue,
			Room:    f.Location.Room,
			Address: f.Location.Address,
		},
		Capacity: f.Capacity,
		ImageURL: f.ImageURL,
	}
}

type NoticeForm struct {
	Title       string `json:"title" validate:"required,min=3,max=200"`
	Content     string `json:"content" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Priority    string `json:"priority" validate:"required,oneof=low medium high urgent"`
	PublishDate Date   `json:"publishDate"`
	ExpiryDate  Date   `json:"expiryDate"`
}

func noticeFormValidation(sl validator.StructLevel) {
	f := sl.Current().Interface().(NoticeForm)
	if f.PublishDate.IsZero() {
		sl.ReportError(f.PublishDate, "publishDate", "PublishDate", "required", "")
	}
	if f.ExpiryDate.IsZero() {
		sl.ReportError(f.ExpiryDate, "expiryDate", "ExpiryDate", "required", "")
	} else if !f.PublishDate.IsZero() && !f.ExpiryDate.After(f.PublishDate.Time) {
		sl.ReportError(f.ExpiryDate, "expiryDate", "ExpiryDate", expiryAfterPublishTag, "")
	}
}

func (f NoticeForm) Request() campus.NoticeRequest {
	return campus.NoticeRequest{
		Title:       f.Title,
		Content:     f.Content,
		Category:    f.Category,
		Priority:    f.Priority,
		PublishDate: f.PublishDate.Time,
		ExpiryDate:  f.ExpiryDate.Time,
	}
}

type ProgramForm struct {
	Name          string   `json:"name" validate:"required,min=2,max=200"`
	Code          string   `json:"code" validate:"required,max=20"`
	Department    string   `json:"department" validate:"required"`
	Level         string   `json:"level" validate:"required,oneof=certificate diploma undergraduate postgraduate"`
	DurationYears int      `json:"durationYears" validate:"required,gte=1,lte=10"`
	Description   string   `json:"description"`
	Prerequisites []string `json:"prerequisites" validate:"omitempty,dive,required"`
}

func (f ProgramForm) Request() campus.ProgramRequest {
	return campus.ProgramRequest{
		Name:          f.Name,
		Code:          f.Code,
		Department:    f.Department,
		Level:         f.Level,
		DurationYears: f.DurationYears,
		Description:   f.Description,
		Prerequisites: f.Prerequisites,
	}
}

type BlogForm struct {
	Title      string   `json:"title" validate:"required,min=3,max=200"`
	Slug       string   `json:"slug" validate:"omitempty,max=200"`
	Content    string   `json:"content" validate:"required"`
	Excerpt    string   `json:"excerpt" validate:"omitempty,max=500"`
	Tags       []string `json:"tags" validate:"omitempty,dive,required"`
	CoverImage string   `json:"coverImage"`
}

func (f BlogForm) Request() campus.BlogRequest {
	return campus.BlogRequest{
		Title:      f.Title,
		Slug:       f.Slug,
		Content:    f.Content,
		Excerpt:    f.Excerpt,
		Tags:       f.Tags,
		CoverImage: f.CoverImage,
	}
}
