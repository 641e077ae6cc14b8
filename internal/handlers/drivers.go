package handlers

import (
	"time"

	"github.com/MRsugoii/skycar-system-sub001/internal/models"
	"github.com/MRsugoii/skycar-system-sub001/internal/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetDriverProfile retrieves the requesting driver's profile
func GetDriverProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var profile models.DriverProfile
		if err := db.Preload("User").Where("user_id = ?", userId).First(&profile).Error; err != nil {
			c.JSON(404, gin.H{"error": "Driver profile not found"})
			return
		}

		c.JSON(200, profile)
	}
}

// UpdateDriverProfile updates license, insurance and vehicle details.
// Changing them drops the driver back to pending until re-verified.
func UpdateDriverProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var input struct {
			LicenseNumber   *string    `json:"licenseNumber"`
			LicenseExpiry   *time.Time `json:"licenseExpiry"`
			InsuranceExpiry *time.Time `json:"insuranceExpiry"`
			CarPlate        *string    `json:"carPlate"`
			CarMake         *string    `json:"carMake"`
			CarColor        *string    `json:"carColor"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var profile models.DriverProfile
		if err := db.Where("user_id = ?", userId).First(&profile).Error; err != nil {
			c.JSON(404, gin.H{"error": "Driver profile not found"})
			return
		}

		credentialsChanged := false
		if input.LicenseNumber != nil {
			profile.LicenseNumber = *input.LicenseNumber
			credentialsChanged = true
		}
		if input.LicenseExpiry != nil {
			profile.LicenseExpiry = input.LicenseExpiry
			credentialsChanged = true
		}
		if input.InsuranceExpiry != nil {
			profile.InsuranceExpiry = input.InsuranceExpiry
			credentialsChanged = true
		}
		if input.CarPlate != nil {
			profile.CarPlate = *input.CarPlate
		}
		if input.CarMake != nil {
			profile.CarMake = *input.CarMake
		}
		if input.CarColor != nil {
			profile.CarColor = *input.CarColor
		}

		if credentialsChanged && profile.Status == models.DriverStatusActive {
			profile.Status = models.DriverStatusPending
		}

		if err := db.Save(&profile).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update driver profile"})
			return
		}

		c.JSON(200, profile)
	}
}

// UploadDriverDocument stores a license or insurance scan for verification
func UploadDriverDocument(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		docType := c.PostForm("type")
		if docType != "license" && docType != "insurance" {
			c.JSON(400, gin.H{"error": "Document type must be 'license' or 'insurance'"})
			return
		}

		file, err := c.FormFile("document")
		if err != nil {
			c.JSON(400, gin.H{"error": "Document file is required"})
			return
		}

		var profile models.DriverProfile
		if err := db.Where("user_id = ?", userId).First(&profile).Error; err != nil {
			c.JSON(404, gin.H{"error": "Driver profile not found"})
			return
		}

		path, err := services.UploadDocument(file, "documents")
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to upload document: " + err.Error()})
			return
		}

		url := services.GetDocumentURL(path)
		if docType == "license" {
			profile.LicenseDocURL = url
		} else {
			profile.InsuranceDocURL = url
		}

		if err := db.Save(&profile).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to save document reference"})
			return
		}

		c.JSON(200, gin.H{
			"message": "Document uploaded successfully",
			"type":    docType,
			"url":     url,
		})
	}
}
