package main

import (
	"log"

	"eveshield-be/internal/model"

	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

// SeedLawyers creates the starter legal aid directory. Existing names are left untouched.
func SeedLawyers(db *gorm.DB) {
	lawyers := []model.Lawyer{
		{
			Name:           "Advocate Sarah Wanjiku",
			Phone:          "+254712345678",
			Whatsapp:       strPtr("+254712345678"),
			Email:          strPtr("sarah.wanjiku@lawfirm.co.ke"),
			County:         "Nairobi",
			Specialization: "GBV cases, Family Law, Criminal Law",
			Address:        strPtr("Upper Hill, Nairobi"),
		},
		{
			Name:           "Legal Aid Center - Mombasa",
			Phone:          "+254723456789",
			Whatsapp:       strPtr("+254723456789"),
			Email:          strPtr("info@legalaidmombasa.co.ke"),
			County:         "Mombasa",
			Specialization: "GBV cases, Pro bono services, Legal representation",
			Address:        strPtr("Mombasa CBD"),
		},
		{
			Name:           "Advocate James Ochieng",
			Phone:          "+254734567890",
			Whatsapp:       strPtr("+254734567890"),
			Email:          strPtr("james.ochieng@law.co.ke"),
			County:         "Kisumu",
			Specialization: "GBV cases, Human Rights, Constitutional Law",
			Address:        strPtr("Kisumu Town"),
		},
		{
			Name:           "FIDA Kenya - Nairobi Branch",
			Phone:          "+254745678901",
			Whatsapp:       strPtr("+254745678901"),
			Email:          strPtr("nairobi@fida-kenya.org"),
			County:         "Nairobi",
			Specialization: "Women's rights, GBV cases, Legal aid for women",
			Address:        strPtr("Westlands, Nairobi"),
		},
		{
			Name:           "Advocate Mary Akinyi",
			Phone:          "+254756789012",
			Whatsapp:       strPtr("+254756789012"),
			Email:          strPtr("mary.akinyi@lawfirm.co.ke"),
			County:         "Nakuru",
			Specialization: "GBV cases, Family Law, Protection Orders",
			Address:        strPtr("Nakuru Town"),
		},
		{
			Name:           "Legal Services Center - Eldoret",
			Phone:          "+254767890123",
			Whatsapp:       strPtr("+254767890123"),
			Email:          strPtr("info@legalserviceseldoret.co.ke"),
			County:         "Uasin Gishu",
			Specialization: "GBV cases, Legal representation, Court processes",
			Address:        strPtr("Eldoret Town"),
		},
	}

	for _, l := range lawyers {
		l.IsActive = true
		if err := db.Where("name = ?", l.Name).FirstOrCreate(&l).Error; err != nil {
			log.Printf("Error seeding lawyer %s: %v", l.Name, err)
			continue
		}
		log.Printf("Created/Updated lawyer: %s", l.Name)
	}
}

// SeedTherapists creates the starter counselling directory. Existing names are left untouched.
func SeedTherapists(db *gorm.DB) {
	therapists := []model.Therapist{
		{
			Name:           "Dr. Grace Muthoni",
			Specialty:      "Trauma counseling, PTSD, Domestic violence support",
			Phone:          "+254712345679",
			Email:          strPtr("grace.muthoni@therapy.co.ke"),
			County:         "Nairobi",
			Address:        strPtr("Westlands, Nairobi"),
			Qualifications: strPtr("PhD in Clinical Psychology"),
		},
		{
			Name:           "Counselor Amina Hassan",
			Specialty:      "Trauma counseling, Anxiety, Depression",
			Phone:          "+254723456790",
			Email:          strPtr("amina.hassan@counseling.co.ke"),
			County:         "Mombasa",
			Address:        strPtr("Mombasa CBD"),
			Qualifications: strPtr("MSc in Counseling Psychology"),
		},
		{
			Name:           "Dr. Peter Otieno",
			Specialty:      "Trauma counseling, GBV survivor support, Mental health",
			Phone:          "+254734567891",
			Email:          strPtr("peter.otieno@therapy.co.ke"),
			County:         "Kisumu",
			Address:        strPtr("Kisumu Town"),
			Qualifications: strPtr("PhD in Psychology"),
		},
		{
			Name:           "Counselor Jane Wanjiru",
			Specialty:      "Trauma counseling, Stress management, Self-care",
			Phone:          "+254745678902",
			Email:          strPtr("jane.wanjiru@counseling.co.ke"),
			County:         "Nairobi",
			Address:        strPtr("Karen, Nairobi"),
			Qualifications: strPtr("MSc in Clinical Psychology"),
		},
		{
			Name:           "Dr. Susan Kamau",
			Specialty:      "Trauma counseling, PTSD, Anxiety disorders",
			Phone:          "+254756789013",
			Email:          strPtr("susan.kamau@therapy.co.ke"),
			County:         "Nakuru",
			Address:        strPtr("Nakuru Town"),
			Qualifications: strPtr("PhD in Clinical Psychology"),
		},
		{
			Name:           "Counselor David Kipchoge",
			Specialty:      "Trauma counseling, Mental health support, Crisis intervention",
			Phone:          "+254767890124",
			Email:          strPtr("david.kipchoge@counseling.co.ke"),
			County:         "Uasin Gishu",
			Address:        strPtr("Eldoret Town"),
			Qualifications: strPtr("MSc in Counseling Psychology"),
		},
	}

	for _, t := range therapists {
		t.IsActive = true
		if err := db.Where("name = ?", t.Name).FirstOrCreate(&t).Error; err != nil {
			log.Printf("Error seeding therapist %s: %v", t.Name, err)
			continue
		}
		log.Printf("Created/Updated therapist: %s", t.Name)
	}
}
