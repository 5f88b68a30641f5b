package handlers

import (
	"net/url"
	"strings"

	"lmscl/internal/models"
)

func field(v url.Values, name string) string {
	return strings.TrimSpace(v.Get(name))
}

// checkbox reads an "is_active" style flag; unchecked boxes are not submitted.
func checkbox(v url.Values, name string) *bool {
	b := v.Get(name) == "true"
	return &b
}

func studentFormFromValues(v url.Values) models.StudentForm {
	return models.StudentForm{
		Username:             field(v, "username"),
		Email:                field(v, "email"),
		FirstName:            field(v, "first_name"),
		LastName:             field(v, "last_name"),
		Password:             v.Get("password"),
		IsActive:             checkbox(v, "is_active"),
		Mobile:               field(v, "mobile"),
		Location:             field(v, "location"),
		FatherName:           field(v, "father_name"),
		TenthBoard:           field(v, "10th_board"),
		TwelfthBoard:         field(v, "12th_board"),
		TenthSchool:          field(v, "10th_school"),
		TwelfthSchool:        field(v, "12th_school"),
		TenthPercentage:      field(v, "10th_Percentage"),
		TwelfthPercentage:    field(v, "12th_Percentage"),
		TenthPassoutYear:     field(v, "10th_passout_year"),
		TwelfthPassoutYear:   field(v, "12th_passout_year"),
		GraduationPercentage: field(v, "Graduation_Percentage"),
		PassoutYear:          field(v, "Passout_Year"),
		Branch:               field(v, "branch"),
		UGCollege:            field(v, "ug_college"),
		Skills:               splitList(v.Get("skills")),
	}
}

// studentFormOf prefills the edit dialog. The password is never echoed back.
func studentFormOf(s models.Student) models.StudentForm {
	active := s.IsActive
	return models.StudentForm{
		Username:             s.Username,
		Email:                s.Email,
		FirstName:            s.FirstName,
		LastName:             s.LastName,
		IsActive:             &active,
		Mobile:               s.Mobile,
		Location:             s.Location,
		FatherName:           s.FatherName,
		TenthBoard:           s.TenthBoard,
		TwelfthBoard:         s.TwelfthBoard,
		TenthSchool:          s.TenthSchool,
		TwelfthSchool:        s.TwelfthSchool,
		TenthPercentage:      s.TenthPercentage,
		TwelfthPercentage:    s.TwelfthPercentage,
		TenthPassoutYear:     s.TenthPassoutYear,
		TwelfthPassoutYear:   s.TwelfthPassoutYear,
		GraduationPercentage: s.GraduationPercentage,
		PassoutYear:          s.PassoutYear,
		Branch:               s.Branch,
		UGCollege:            s.UGCollege,
		Skills:               s.Skills,
	}
}

func teacherFormFromValues(v url.Values) models.TeacherForm {
	return models.TeacherForm{
		Username:  field(v, "username"),
		Email:     field(v, "email"),
		FirstName: field(v, "first_name"),
		LastName:  field(v, "last_name"),
		Password:  v.Get("password"),
		IsActive:  checkbox(v, "is_active"),
	}
}

func teacherFormOf(t models.Teacher) models.TeacherForm {
	active := t.IsActive
	return models.TeacherForm{
		Username:  t.Username,
		Email:     t.Email,
		FirstName: t.FirstName,
		LastName:  t.LastName,
		IsActive:  &active,
	}
}

func hrFormFromValues(v url.Values) models.HRForm {
	return models.HRForm{
		HRName:             field(v, "hrname"),
		Email:              field(v, "email"),
		FirstName:          field(v, "first_name"),
		LastName:           field(v, "last_name"),
		Password:           v.Get("password"),
		IsActive:           checkbox(v, "is_active"),
		Mobile:             field(v, "mobile"),
		CompanyName:        field(v, "company_name"),
		CompanyDescription: field(v, "company_description"),
		Position:           field(v, "position"),
		LinkedIn:           field(v, "linkedin"),
	}
}

func hrFormOf(h models.HR) models.HRForm {
	active := h.IsActive
	return models.HRForm{
		HRName:             h.HRName,
		Email:              h.Email,
		FirstName:          h.FirstName,
		LastName:           h.LastName,
		IsActive:           &active,
		Mobile:             h.Mobile,
		CompanyName:        h.CompanyName,
		CompanyDescription: h.CompanyDescription,
		Position:           h.Position,
		LinkedIn:           h.LinkedIn,
	}
}
