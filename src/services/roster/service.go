package roster

import (
	"Backend-Verdancy/src/models"
	"Backend-Verdancy/src/services/checkins"
	"Backend-Verdancy/src/services/members"
	"errors"
	"log"
	"sync"
	"time"
)

// CheckinState สถานะการเช็คชื่อของสมาชิกในมุมมองหน้า roster
// แยก "ยังไม่เช็ค" กับ "กำลังเช็ค (รอ store ตอบ)" ออกจากกันชัดเจน
type CheckinState string

const (
	StateNone      CheckinState = "none"
	StatePending   CheckinState = "pending"
	StateConfirmed CheckinState = "confirmed"
	StateFailed    CheckinState = "failed"
)

// ErrCheckinPending มีการเช็คชื่อของสมาชิกคนนี้ค้างอยู่ระหว่างรอ store
var ErrCheckinPending = errors.New("check-in already in flight")

type mark struct {
	state CheckinState
	date  string // mark ผูกกับวัน ข้ามวันแล้วถือว่าหมดอายุ
}

var (
	mu     sync.RWMutex
	cached []models.Member
	loaded bool
	marks  = map[string]mark{}

	// จุดต่อกับ data access layer, ทดสอบได้โดย override
	fetchMembers = members.GetAllMembers
	clock        = time.Now
)

// Entry สมาชิกหนึ่งคนในมุมมอง roster พร้อมสถานะของวันนี้
type Entry struct {
	models.MemberResponse
	CheckedInToday bool         `json:"checkedInToday"`
	CheckinState   CheckinState `json:"checkinState"`
}

// Refresh ดึงรายชื่อสมาชิกจาก store มาแทน cache ทั้งก้อน
func Refresh() error {
	all, err := fetchMembers()
	if err != nil {
		return err
	}

	mu.Lock()
	cached = all
	loaded = true
	mu.Unlock()
	return nil
}

// Invalidate บังคับให้ Roster ครั้งถัดไปดึงข้อมูลใหม่จาก store
// ทุก mutation ผ่าน data access layer ต้องตามด้วยการเรียกนี้
func Invalidate() {
	mu.Lock()
	loaded = false
	mu.Unlock()
}

// Roster มุมมองหน้าเช็คชื่อ: กรองตาราง schedule ของวันนี้ (เว้นแต่ showAll)
// แล้วจัดอันดับผลค้นหาถ้ามีคำค้น คืนสำเนา อ่านอย่างเดียว
func Roster(showAll bool, query string) ([]Entry, error) {
	mu.RLock()
	ok := loaded
	mu.RUnlock()

	if !ok {
		if err := Refresh(); err != nil {
			return nil, err
		}
	}

	mu.RLock()
	defer mu.RUnlock()

	now := clock()
	view := cached
	if !showAll {
		view = members.FilterBySchedule(view, checkins.Weekday(now))
	}
	if query != "" {
		view = members.RankByUsername(view, query)
	}

	today := checkins.Today(now)
	entries := make([]Entry, 0, len(view))
	for _, m := range view {
		entries = append(entries, Entry{
			MemberResponse: models.NewMemberResponse(m),
			CheckedInToday: m.LastCheckinDate() == today,
			CheckinState:   stateFor(m.ID.Hex(), today),
		})
	}
	return entries, nil
}

func stateFor(id, today string) CheckinState {
	mk, ok := marks[id]
	if !ok || mk.date != today {
		return StateNone
	}
	return mk.state
}

// BeginCheckin ทำ optimistic mark เป็น pending ก่อนยิงไปที่ store
// ปฏิเสธถ้ามีการเช็คค้างอยู่แล้วของวันเดียวกัน
func BeginCheckin(id string) error {
	today := checkins.Today(clock())

	mu.Lock()
	defer mu.Unlock()

	if mk, ok := marks[id]; ok && mk.date == today && mk.state == StatePending {
		return ErrCheckinPending
	}
	marks[id] = mark{state: StatePending, date: today}
	return nil
}

// ConfirmCheckin store ตอบรับแล้ว อัปเดต cache ในที่ ไม่ต้อง refetch ทั้งก้อน
func ConfirmCheckin(updated *models.Member) {
	today := checkins.Today(clock())

	mu.Lock()
	defer mu.Unlock()

	marks[updated.ID.Hex()] = mark{state: StateConfirmed, date: today}
	for i := range cached {
		if cached[i].ID == updated.ID {
			cached[i] = *updated
			break
		}
	}
}

// FailCheckin ยกเลิก optimistic mark เมื่อ store ล้มเหลว (rollback)
func FailCheckin(id string) {
	today := checkins.Today(clock())

	mu.Lock()
	defer mu.Unlock()

	marks[id] = mark{state: StateFailed, date: today}
	log.Println("⚠️ Check-in rolled back for member:", id)
}

// RemoveMember ตัดสมาชิกออกจาก view ทันทีหลังลบสำเร็จ
func RemoveMember(id string) {
	mu.Lock()
	defer mu.Unlock()

	delete(marks, id)
	for i := range cached {
		if cached[i].ID.Hex() == id {
			cached = append(cached[:i], cached[i+1:]...)
			break
		}
	}
}
