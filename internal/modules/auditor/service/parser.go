package service

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"regexp"

	"fmtrack/internal/modules/auditor/domain"
	apperrors "fmtrack/internal/platform/errors"
)

var saveMagic = []byte("GVAS")

var (
	gameVersionRe = regexp.MustCompile(`\d+\.\d+\.\d+`)
	itemCodeRe    = regexp.MustCompile(`([0-9]{6})\x00`)
	categoryRe    = regexp.MustCompile(`\x00([A-Za-z_]{3,30})\x00`)
)

// Known map markers embedded in the save body.
var mapMarkers = [][]byte{
	[]byte("FOREST_QUARRY"),
	[]byte("DESERT_MINE"),
	[]byte("ARCTIC_MINE"),
	[]byte("VOLCANO_MINE"),
}

// Parser extracts bookkeeping data from the game's binary save
// format. The format is undocumented, so everything past the magic is
// best effort: malformed regions are skipped, never fatal.
type Parser struct{}

func NewParser() Parser { return Parser{} }

func (Parser) Parse(data []byte) (domain.Report, error) {
	if !bytes.HasPrefix(data, saveMagic) {
		return domain.Report{}, fmt.Errorf("missing GVAS magic: %w", apperrors.ErrNotASaveFile)
	}
	report := domain.Report{FileSize: int64(len(data))}
	parseHeader(data, &report)
	parseMoney(data, &report)
	parseTransactions(data, &report)
	parseMap(data, &report)
	return report, nil
}

// Header: magic(4) + save version(4) + package version(4) + unknown(4)
// + length-prefixed engine version string.
func parseHeader(data []byte, report *domain.Report) {
	const offset = 16
	if len(data) < offset+4 {
		return
	}
	strLen := int(int32(binary.LittleEndian.Uint32(data[offset:])))
	if strLen > 0 && strLen < 100 && offset+4+strLen <= len(data) {
		report.EngineVersion = string(data[offset+4 : offset+4+strLen-1])
	}
	head := data
	if len(head) > 500 {
		head = head[:500]
	}
	if m := gameVersionRe.Find(head); m != nil {
		report.GameVersion = string(m)
	}
}

// NewMoney\x00 + type_len(4) + "IntProperty\x00" + size(8) + value(4).
func parseMoney(data []byte, report *domain.Report) {
	pos := bytes.Index(data, []byte("NewMoney\x00"))
	if pos == -1 {
		return
	}
	offset := pos + 9
	if offset+4 > len(data) {
		return
	}
	typeLen := int(int32(binary.LittleEndian.Uint32(data[offset:])))
	if typeLen < 0 || typeLen > 64 {
		return
	}
	offset += 4 + typeLen + 8
	if offset+4 > len(data) {
		return
	}
	report.CurrentMoneyRaw = int32(binary.LittleEndian.Uint32(data[offset:]))
}

func parseTransactions(data []byte, report *domain.Report) {
	start := bytes.Index(data, []byte("TransactionsHistory"))
	if start == -1 {
		return
	}
	end := start + 20000
	if end > len(data) {
		end = len(data)
	}
	area := data[start:end]

	namePattern := []byte("\x05\x00\x00\x00Name\x00")
	pos := 0
	for {
		idx := bytes.Index(area[pos:], namePattern)
		if idx == -1 {
			break
		}
		pos += idx
		if tx, ok := parseSingleTransaction(area, pos); ok {
			report.Transactions = append(report.Transactions, tx)
		}
		pos++
	}
}

func parseSingleTransaction(data []byte, namePos int) (domain.Transaction, bool) {
	from := namePos + 6
	to := namePos + 250
	if from >= len(data) {
		return domain.Transaction{}, false
	}
	if to > len(data) {
		to = len(data)
	}
	area := data[from:to]

	codeMatch := itemCodeRe.FindSubmatch(area)
	if codeMatch == nil {
		return domain.Transaction{}, false
	}
	code := string(codeMatch[1])

	catPos := bytes.Index(area, []byte("Category\x00"))
	if catPos == -1 {
		return domain.Transaction{}, false
	}
	category := "Unknown"
	catEnd := catPos + 100
	if catEnd > len(area) {
		catEnd = len(area)
	}
	if catPos+20 < catEnd {
		if m := categoryRe.FindSubmatch(area[catPos+20 : catEnd]); m != nil {
			category = string(m[1])
		}
	}

	amtPos := bytes.Index(area, []byte("Amount\x00"))
	if amtPos == -1 {
		return domain.Transaction{}, false
	}
	amtEnd := amtPos + 50
	if amtEnd > len(area) {
		amtEnd = len(area)
	}
	amountArea := area[amtPos:amtEnd]
	intPos := bytes.Index(amountArea, []byte("IntProperty"))
	if intPos == -1 {
		return domain.Transaction{}, false
	}
	valPos := intPos + 12 + 8
	if valPos+4 > len(amountArea) {
		return domain.Transaction{}, false
	}
	raw := int32(binary.LittleEndian.Uint32(amountArea[valPos:]))

	return domain.Transaction{ItemCode: code, Category: category, AmountRaw: raw}, true
}

func parseMap(data []byte, report *domain.Report) {
	for _, marker := range mapMarkers {
		if bytes.Contains(data, marker) {
			report.MapName = string(marker)
			return
		}
	}
}
