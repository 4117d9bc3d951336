package model

import "testing"

func TestPrimaryContact(t *testing.T) {
	c := &Client{
		Contacts: []Contact{
			{ID: "ct1", Name: "Second"},
			{ID: "ct2", Name: "First", IsPrimary: true},
		},
	}

	primary := c.PrimaryContact()
	if primary == nil || primary.ID != "ct2" {
		t.Errorf("Expected ct2 as primary, got %+v", primary)
	}
}

func TestPrimaryContactFallsBackToFirst(t *testing.T) {
	c := &Client{
		Contacts: []Contact{
			{ID: "ct1", Name: "Only"},
		},
	}

	primary := c.PrimaryContact()
	if primary == nil || primary.ID != "ct1" {
		t.Errorf("Expected first contact as fallback, got %+v", primary)
	}
}

func TestPrimaryContactEmpty(t *testing.T) {
	c := &Client{}
	if primary := c.PrimaryContact(); primary != nil {
		t.Errorf("Expected nil for no contacts, got %+v", primary)
	}
}
