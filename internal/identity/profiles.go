package identity

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/osse101/LondonTravel_Go/internal/domain"
)

// mapAmazon maps the Login with Amazon profile
func mapAmazon(body []byte) (domain.ExternalProfile, error) {
	var p struct {
		UserID string `json:"user_id"`
		Name   string `json:"name"`
		Email  string `json:"email"`
	}
	if err := json.Unmarshal(body, &p); err != nil {
		return domain.ExternalProfile{}, err
	}
	given, surname := splitName(p.Name)
	return domain.ExternalProfile{
		ProviderUserID: p.UserID,
		DisplayName:    p.Name,
		Email:          p.Email,
		GivenName:      given,
		Surname:        surname,
	}, nil
}

func mapFacebook(body []byte) (domain.ExternalProfile, error) {
	var p struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		Email     string `json:"email"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	if err := json.Unmarshal(body, &p); err != nil {
		return domain.ExternalProfile{}, err
	}
	return domain.ExternalProfile{
		ProviderUserID: p.ID,
		DisplayName:    p.Name,
		Email:          p.Email,
		GivenName:      p.FirstName,
		Surname:        p.LastName,
	}, nil
}

// mapGitHub maps the GitHub user; the numeric id is stable, the login is not
func mapGitHub(body []byte) (domain.ExternalProfile, error) {
	var p struct {
		ID    int64  `json:"id"`
		Login string `json:"login"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(body, &p); err != nil {
		return domain.ExternalProfile{}, err
	}

	display := p.Name
	if display == "" {
		display = p.Login
	}
	given, surname := splitName(p.Name)

	var id string
	if p.ID != 0 {
		id = strconv.FormatInt(p.ID, 10)
	}
	return domain.ExternalProfile{
		ProviderUserID: id,
		DisplayName:    display,
		Email:          p.Email,
		GivenName:      given,
		Surname:        surname,
	}, nil
}

func mapGoogle(body []byte) (domain.ExternalProfile, error) {
	var p struct {
		Sub        string `json:"sub"`
		Name       string `json:"name"`
		Email      string `json:"email"`
		GivenName  string `json:"given_name"`
		FamilyName string `json:"family_name"`
	}
	if err := json.Unmarshal(body, &p); err != nil {
		return domain.ExternalProfile{}, err
	}
	return domain.ExternalProfile{
		ProviderUserID: p.Sub,
		DisplayName:    p.Name,
		Email:          p.Email,
		GivenName:      p.GivenName,
		Surname:        p.FamilyName,
	}, nil
}

// mapMicrosoft maps the Graph user; mail is empty for personal accounts
func mapMicrosoft(body []byte) (domain.ExternalProfile, error) {
	var p struct {
		ID                string `json:"id"`
		DisplayName       string `json:"displayName"`
		GivenName         string `json:"givenName"`
		Surname           string `json:"surname"`
		Mail              string `json:"mail"`
		UserPrincipalName string `json:"userPrincipalName"`
	}
	if err := json.Unmarshal(body, &p); err != nil {
		return domain.ExternalProfile{}, err
	}

	email := p.Mail
	if email == "" && strings.Contains(p.UserPrincipalName, "@") {
		email = p.UserPrincipalName
	}
	return domain.ExternalProfile{
		ProviderUserID: p.ID,
		DisplayName:    p.DisplayName,
		Email:          email,
		GivenName:      p.GivenName,
		Surname:        p.Surname,
	}, nil
}

// mapTwitter maps the v2 users/me response; Twitter does not share email addresses
func mapTwitter(body []byte) (domain.ExternalProfile, error) {
	var p struct {
		Data struct {
			ID       string `json:"id"`
			Name     string `json:"name"`
			Username string `json:"username"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &p); err != nil {
		return domain.ExternalProfile{}, err
	}

	display := p.Data.Name
	if display == "" {
		display = p.Data.Username
	}
	given, surname := splitName(p.Data.Name)
	return domain.ExternalProfile{
		ProviderUserID: p.Data.ID,
		DisplayName:    display,
		GivenName:      given,
		Surname:        surname,
	}, nil
}

// splitName splits a full name at the last space
func splitName(name string) (string, string) {
	name = strings.TrimSpace(name)
	i := strings.LastIndex(name, " ")
	if i < 0 {
		return name, ""
	}
	return strings.TrimSpace(name[:i]), name[i+1:]
}
