package uploads

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"log"
	"os"

	"golang.org/x/image/draw"
)

// ขนาดสูงสุดของรูปโปรไฟล์ที่เก็บลงเอกสารสมาชิก
const (
	MaxThumbWidth  = 100
	MaxThumbHeight = 100
)

// placeholderPath ไฟล์รูปสำรองเมื่อไม่ได้อัปโหลดรูปมา
func placeholderPath() string {
	if p := os.Getenv("PLACEHOLDER_PATH"); p != "" {
		return p
	}
	return "./assets/placeholder.png"
}

// EncodeThumbnail ย่อรูปให้ไม่เกิน 100x100 แล้วแปลงเป็น base64 PNG data URL
// รับ bytes ของไฟล์รูป (png/jpeg/gif) คืน data URL พร้อมใช้ฝังในเอกสาร
func EncodeThumbnail(data []byte) (string, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("ไม่สามารถอ่านไฟล์รูปได้: %v", err)
	}

	w, h := fitWithin(src.Bounds().Dx(), src.Bounds().Dy(), MaxThumbWidth, MaxThumbHeight)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return "", fmt.Errorf("ไม่สามารถ encode PNG ได้: %v", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// EncodeThumbnailOrPlaceholder ใช้รูปที่ส่งมา ถ้าไม่มีใช้รูป placeholder แทน
func EncodeThumbnailOrPlaceholder(data []byte) (string, error) {
	if len(data) > 0 {
		return EncodeThumbnail(data)
	}

	placeholder, err := os.ReadFile(placeholderPath())
	if err != nil {
		// ไม่มีไฟล์ placeholder → สร้างรูปสีเทาแทน
		log.Println("⚠️ Placeholder image not found, generating a flat one:", err)
		return encodeFlatPlaceholder()
	}
	return EncodeThumbnail(placeholder)
}

// fitWithin คงสัดส่วนรูปเดิม โดยลดขนาดให้อยู่ใน maxW x maxH
func fitWithin(w, h, maxW, maxH int) (int, int) {
	if w > maxW {
		h = h * maxW / w
		w = maxW
	}
	if h > maxH {
		w = w * maxH / h
		h = maxH
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

func encodeFlatPlaceholder() (string, error) {
	img := image.NewRGBA(image.Rect(0, 0, MaxThumbWidth, MaxThumbHeight))
	for i := range img.Pix {
		img.Pix[i] = 0xcc
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
