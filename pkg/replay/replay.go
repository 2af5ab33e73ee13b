// Package replay 录制和回放逐帧输入
//
// 模拟是确定性的：同一关卡、同一物理配置、同一输入序列总是得到相同结果，
// 因此只需要保存输入。录像使用 msgpack 编码。
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/decker502/emberwave/pkg/input"
	"github.com/decker502/emberwave/pkg/sim"
	"github.com/vmihailenco/msgpack/v5"
)

// FormatVersion 录像格式版本
const FormatVersion = 1

// ErrVersionMismatch 录像版本与当前程序不兼容
var ErrVersionMismatch = errors.New("replay version mismatch")

// Recording 一段录像
type Recording struct {
	Version int     `msgpack:"v"`
	LevelID string  `msgpack:"level"`
	StepDT  float64 `msgpack:"dt"`
	// BaseDeaths 录制开始前已累计的死亡次数。
	// 手动重置会丢弃帧但保留死亡计数，回放结果需要加上这部分。
	BaseDeaths int           `msgpack:"deaths,omitempty"`
	Frames     []input.State `msgpack:"frames"`
}

// Recorder 逐帧追加输入
type Recorder struct {
	rec Recording
}

// NewRecorder 创建录制器
func NewRecorder(levelID string) *Recorder {
	return &Recorder{rec: Recording{
		Version: FormatVersion,
		LevelID: levelID,
		StepDT:  sim.StepDT,
	}}
}

// Record 记录一个模拟步的输入
func (r *Recorder) Record(state input.State) {
	r.rec.Frames = append(r.rec.Frames, state)
}

// Restart 丢弃已录制的帧（关卡被手动重置时调用）
//
// deaths 为重置时模拟已累计的死亡次数，之后的录像从这个值开始计数。
func (r *Recorder) Restart(deaths int) {
	r.rec.Frames = r.rec.Frames[:0]
	r.rec.BaseDeaths = deaths
}

// Len 已录制的帧数
func (r *Recorder) Len() int {
	return len(r.rec.Frames)
}

// Recording 返回录像的副本
func (r *Recorder) Recording() Recording {
	rec := r.rec
	rec.Frames = append([]input.State(nil), r.rec.Frames...)
	return rec
}

// Encode 写出录像
func Encode(w io.Writer, rec Recording) error {
	if err := msgpack.NewEncoder(w).Encode(&rec); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Decode 读取录像并检查版本
func Decode(r io.Reader) (Recording, error) {
	var rec Recording
	if err := msgpack.NewDecoder(r).Decode(&rec); err != nil {
		return Recording{}, fmt.Errorf("failed to decode replay: %w", err)
	}
	if rec.Version != FormatVersion {
		return Recording{}, fmt.Errorf("%w: got %d, want %d", ErrVersionMismatch, rec.Version, FormatVersion)
	}
	if rec.StepDT <= 0 {
		return Recording{}, fmt.Errorf("invalid replay step %.4f", rec.StepDT)
	}
	return rec, nil
}

// SaveFile 把录像写入文件
func SaveFile(path string, rec Recording) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create replay file: %w", err)
	}
	if err := Encode(f, rec); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadFile 从文件读取录像
func LoadFile(path string) (Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return Recording{}, fmt.Errorf("failed to open replay file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Summary 回放结果
type Summary struct {
	Frames    int
	Deaths    int
	Gems      int
	Completed bool
	// CompletedAt 通关所在的帧下标，未通关时为 -1
	CompletedAt int
	Elapsed     float64
}

// Play 在给定模拟上逐帧回放录像，通关后停止
//
// 报告的死亡次数包含录像的 BaseDeaths，与录制时记入进度的值一致。
func Play(s *sim.Simulation, rec Recording) Summary {
	sum := Summary{CompletedAt: -1}
	r := s.Result()
	for i, state := range rec.Frames {
		r = s.Step(rec.StepDT, state)
		sum.Frames++
		if r.Completed {
			sum.Completed = true
			sum.CompletedAt = i
			break
		}
	}
	sum.Deaths = rec.BaseDeaths + r.Deaths
	sum.Gems = r.GemsCollected
	sum.Elapsed = r.Elapsed
	return sum
}
