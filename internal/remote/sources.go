package remote

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"git.asdf.cafe/abs3nt/randomwall/internal/constants"
	"git.asdf.cafe/abs3nt/randomwall/internal/errors"
	"git.asdf.cafe/abs3nt/randomwall/internal/interfaces"
)

// Bing returns the Bing image of the day.
type Bing struct {
	BaseURL   string
	ImageHost string
	client    *http.Client
}

// NewBing creates a Bing source using the public endpoints
func NewBing(client *http.Client) *Bing {
	return &Bing{
		BaseURL:   constants.BingBaseURL,
		ImageHost: constants.BingImageHost,
		client:    client,
	}
}

func (b *Bing) Name() string { return constants.SourceBing }

type bingArchive struct {
	Images []struct {
		URLBase string `json:"urlbase"`
	} `json:"images"`
}

// Fetch returns the 1920x1080 rendition of today's image.
func (b *Bing) Fetch(ctx context.Context) (string, error) {
	var archive bingArchive
	endpoint := b.BaseURL + "/HPImageArchive.aspx?format=js&idx=0&n=1&mkt=en-US"
	if err := getJSON(ctx, b.client, endpoint, &archive); err != nil {
		return "", err
	}
	if len(archive.Images) == 0 || archive.Images[0].URLBase == "" {
		return "", fmt.Errorf("%w: no images in bing archive", errors.ErrInvalidResponse)
	}
	return b.ImageHost + archive.Images[0].URLBase + constants.BingResolution, nil
}

// Desktoppr returns a random safe wallpaper from desktoppr.co.
type Desktoppr struct {
	BaseURL string
	client  *http.Client
}

// NewDesktoppr creates a desktoppr source using the public endpoint
func NewDesktoppr(client *http.Client) *Desktoppr {
	return &Desktoppr{
		BaseURL: constants.DesktopprBaseURL,
		client:  client,
	}
}

func (d *Desktoppr) Name() string { return constants.SourceDesktoppr }

type desktopprRandom struct {
	Response struct {
		Image struct {
			URL string `json:"url"`
		} `json:"image"`
	} `json:"response"`
}

func (d *Desktoppr) Fetch(ctx context.Context) (string, error) {
	var random desktopprRandom
	if err := getJSON(ctx, d.client, d.BaseURL+"/1/wallpapers/random?safe=all", &random); err != nil {
		return "", err
	}
	if random.Response.Image.URL == "" {
		return "", fmt.Errorf("%w: no image url in desktoppr response", errors.ErrInvalidResponse)
	}
	return random.Response.Image.URL, nil
}

// NewSource returns the named source.
func NewSource(name string, client *http.Client) (interfaces.Source, error) {
	switch name {
	case constants.SourceBing:
		return NewBing(client), nil
	case constants.SourceDesktoppr:
		return NewDesktoppr(client), nil
	default:
		return nil, fmt.Errorf("%w: %s (valid: %s)", errors.ErrUnknownSource, name, strings.Join(constants.ValidSources, ", "))
	}
}
