package journal

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"sync"
)

// FileModeReadWrite rw-r--r-- (擁有者讀寫，其他人唯讀)
const FileModeReadWrite fs.FileMode = 0644

// Journal 以 JSON Lines 格式追加寫入的稽核紀錄檔
type Journal struct {
	file *os.File
	mu   sync.Mutex
}

// Open 開啟或建立一個 journal 檔案
// O_RDWR 讀寫模式
// O_APPEND 每次寫入時自動跳到文件末尾
// O_CREATE 如果文件不存在則建立
func Open(path string) (*Journal, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, FileModeReadWrite)
	if err != nil {
		return nil, err
	}
	return &Journal{file: file}, nil
}

// Append 寫入一筆資料並刷入硬碟
func (j *Journal) Append(v any) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if err := json.NewEncoder(j.file).Encode(v); err != nil {
		return err
	}
	return j.file.Sync()
}

// Close 關閉檔案
func (j *Journal) Close() error {
	return j.file.Close()
}

// ReadAll 從頭讀取所有資料
// callback 每次接收一筆原始 JSON，避免一次將所有資料載入記憶體
func (j *Journal) ReadAll(callback func(jsonRaw []byte) error) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	// 確保從頭讀取
	if _, err := j.file.Seek(0, io.SeekStart); err != nil {
		return err
	}

	decoder := json.NewDecoder(j.file)
	for {
		var raw json.RawMessage
		if err := decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if err := callback(raw); err != nil {
			return err
		}
	}
	return nil
}
