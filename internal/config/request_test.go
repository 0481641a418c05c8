package config

import (
	"strings"
	"testing"
)

const testRequestYAML = `---
category: channelLetters
text: "OPEN"
dimensions:
  widthIn: 96
  heightIn: 18
variant:
  lighting: frontLit
  roundedBacker: false
  faceColor: "#d82c2c"
installation:
  heightFeet: 10
  liftType: none
  electricalWork: true
  permit: true
  hardAccess: false
  customer:
    name: "Corner Bakery"
    email: "owner@cornerbakery.example"
rush: false
lamination: false
`

func TestLoadQuoteRequestFromReader(t *testing.T) {
	request, err := LoadQuoteRequestFromReader(strings.NewReader(testRequestYAML))
	if err != nil {
		t.Fatalf("LoadQuoteRequestFromReader() error = %v", err)
	}

	if request.Category != "channelLetters" {
		t.Errorf("Category = %q, expected channelLetters", request.Category)
	}
	if request.Text != "OPEN" {
		t.Errorf("Text = %q, expected OPEN", request.Text)
	}
	if request.Dimensions.HeightIn != 18 {
		t.Errorf("HeightIn = %v, expected 18", request.Dimensions.HeightIn)
	}
	if request.Variant.Lighting != "frontLit" {
		t.Errorf("Lighting = %q, expected frontLit", request.Variant.Lighting)
	}
	if !request.Installation.ElectricalWork || !request.Installation.Permit || request.Installation.HardAccess {
		t.Errorf("extras = %+v, expected electrical and permit only", request.Installation)
	}
	if request.Installation.Customer.Name != "Corner Bakery" {
		t.Errorf("Customer.Name = %q, expected Corner Bakery", request.Installation.Customer.Name)
	}
	if request.LightboxDepth != nil {
		t.Errorf("LightboxDepth = %v, expected nil when omitted", *request.LightboxDepth)
	}
}

func TestLoadQuoteRequestDepthProvided(t *testing.T) {
	yaml := `---
category: lightbox
dimensions:
  widthIn: 48
  heightIn: 36
lightboxDepth: 6
installation:
  heightFeet: 12
`
	request, err := LoadQuoteRequestFromReader(strings.NewReader(yaml))
	if err != nil {
		t.Fatalf("LoadQuoteRequestFromReader() error = %v", err)
	}
	if request.LightboxDepth == nil || *request.LightboxDepth != 6 {
		t.Errorf("LightboxDepth = %v, expected 6", request.LightboxDepth)
	}
}

func TestLoadQuoteRequestMissingCategory(t *testing.T) {
	yaml := `---
text: "OPEN"
dimensions:
  widthIn: 96
  heightIn: 18
`
	_, err := LoadQuoteRequestFromReader(strings.NewReader(yaml))
	if err == nil {
		t.Fatalf("LoadQuoteRequestFromReader() expected error for missing category")
	}
	if !strings.Contains(err.Error(), "category") {
		t.Errorf("error = %v, expected it to name the missing category", err)
	}
}
