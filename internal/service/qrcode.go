package service

import (
	"strings"

	"github.com/skip2/go-qrcode"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type QRGenerator interface {
	Generate(cafeID primitive.ObjectID) ([]byte, error)
}

// DefaultQRGenerator encodes a link to the cafe's rating page as a PNG.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Link(cafeID primitive.ObjectID) string {
	return strings.TrimRight(g.BaseURL, "/") + "/?cafe=" + cafeID.Hex()
}

func (g DefaultQRGenerator) Generate(cafeID primitive.ObjectID) ([]byte, error) {
	return qrcode.Encode(g.Link(cafeID), qrcode.Medium, 256)
}
