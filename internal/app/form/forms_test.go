package form

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) Date {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return Date{Time: t}
}

func TestUserCreateFormValid(t *testing.T) {
	f := UserCreateForm{
		FirstName: "Jo",
		LastName:  "Lee",
		Email:     "jo@x.com",
		Password:  "Passw0rd!",
		Role:      "student",
	}
	assert.Nil(t, Validate(f))
}

func TestUserCreateFormFirstNameTooShort(t *testing.T) {
	f := UserCreateForm{
		FirstName: "J",
		LastName:  "Lee",
		Email:     "jo@x.com",
		Password:  "Passw0rd!",
		Role:      "student",
	}
	fields := Validate(f)
	require.NotNil(t, fields)
	assert.Contains(t, fields, "firstName")
	assert.Len(t, fields, 1, "only the short first name should fail")
}

func TestUserCreateFormCollectsAllFailures(t *testing.T) {
	f := UserCreateForm{
		FirstName: "J",
		Email:     "not-an-email",
		Password:  "short",
		Role:      "janitor",
	}
	fields := Validate(f)
	require.NotNil(t, fields)
	assert.Contains(t, fields, "firstName")
	assert.Contains(t, fields, "lastName")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields, "role")
}

func TestNoticeFormValid(t *testing.T) {
	f := NoticeForm{
		Title:       "Exam schedule",
		Content:     "Finals begin next month.",
		Category:    "examination",
		Priority:    "high",
		PublishDate: date("2024-01-05"),
		ExpiryDate:  date("2024-01-10"),
	}
	assert.Nil(t, Validate(f))
}

// Expiry on or before publish must fail on the expiry field specifically,
// before any request is issued.
func TestNoticeFormExpiryBeforePublish(t *testing.T) {
	f := NoticeForm{
		Title:       "Exam schedule",
		Content:     "Finals begin next month.",
		Category:    "examination",
		Priority:    "high",
		PublishDate: date("2024-01-10"),
		ExpiryDate:  date("2024-01-05"),
	}
	fields := Validate(f)
	require.NotNil(t, fields)
	assert.Equal(t, "must be after publish date", fields["expiryDate"])
	assert.NotContains(t, fields, "publishDate")
}

func TestNoticeFormMissingDates(t *testing.T) {
	f := NoticeForm{
		Title:    "Exam schedule",
		Content:  "Finals begin next month.",
		Category: "examination",
		Priority: "high",
	}
	fields := Validate(f)
	require.NotNil(t, fields)
	assert.Contains(t, fields, "publishDate")
	assert.Contains(t, fields, "expiryDate")
}

func TestEventFormEndBeforeStart(t *testing.T) {
	f := EventForm{
		Title:       "Open Day",
		Description: "Campus tour for applicants",
		EventType:   "academic",
		StartDate:   date("2026-09-10"),
		EndDate:     date("2026-09-09"),
		Location:    EventLocationForm{Venue: "Main Hall"},
		Capacity:    100,
	}
	fields := Validate(f)
	require.NotNil(t, fields)
	assert.Equal(t, "must be after start date", fields["endDate"])
}

func TestEventFormNegativeCapacity(t *testing.T) {
	f := EventForm{
		Title:       "Open Day",
		Description: "Campus tour for applicants",
		EventType:   "academic",
		StartDate:   date("2026-09-10"),
		EndDate:     date("2026-09-11"),
		Location:    EventLocationForm{Venue: "Main Hall"},
		Capacity:    -1,
	}
	fields := Validate(f)
	require.NotNil(t, fields)
	assert.Contains(t, fields, "capacity")
}

func TestProgramFormLevelEnum(t *testing.T) {
	f := ProgramForm{
		Name:          "Computer Science",
		Code:          "CS",
		Department:    "Engineering",
		Level:         "bootcamp",
		DurationYears: 3,
	}
	fields := Validate(f)
	require.NotNil(t, fields)
	assert.Contains(t, fields, "level")
}

func TestDateUnmarshalBothShapes(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-01-10"`), &d))
	assert.Equal(t, 10, d.Day())

	require.NoError(t, json.Unmarshal([]byte(`"2024-01-10T15:04:05Z"`), &d))
	assert.Equal(t, 15, d.Hour())

	assert.Error(t, json.Unmarshal([]byte(`"10/01/2024"`), &d))
}
