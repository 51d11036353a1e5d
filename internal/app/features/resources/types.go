package resources

import (
	"html/template"

	"github.com/dalemusser/ukrconnect/internal/app/system/htmlsanitize"
	"github.com/dalemusser/ukrconnect/internal/app/system/viewdata"
	"github.com/dalemusser/ukrconnect/internal/domain/models"
)

// resourceItem is one card on the resources page.
type resourceItem struct {
	Title         string
	CategoryLabel string
	Description   template.HTML
	Address       string
	Phone         string
	Hours         string
	Website       string
	ContactInfo   string
}

type listData struct {
	viewdata.BaseVM
	Category        string
	CategoryOptions []models.Option
	Resources       []resourceItem
}

func toItem(res models.Resource, _ int) resourceItem {
	return resourceItem{
		Title:         res.Title,
		CategoryLabel: models.CategoryLabel(models.KindResource, res.Category),
		Description:   htmlsanitize.PrepareForDisplay(res.Description),
		Address:       res.Address,
		Phone:         res.Phone,
		Hours:         res.Hours,
		Website:       res.Website,
		ContactInfo:   res.ContactInfo,
	}
}
