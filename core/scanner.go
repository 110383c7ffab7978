package core

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type Scanner struct {
	reader  *bufio.Reader
	LastTag Tag
	line    int
	done    bool
	err     error
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		reader: bufio.NewReader(r),
	}
}

// Next 读取下一组 Code/Value，失败或 EOF 时返回 false
func (s *Scanner) Next() bool {
	if s.done {
		return false
	}
	ok := s.next()
	s.done = !ok
	return ok
}

func (s *Scanner) next() bool {
	// 1. 读取 Code 行，跳过空行
	var codeStr string
	for {
		codeLine, err := s.reader.ReadString('\n')
		if err != nil && (err != io.EOF || strings.TrimSpace(codeLine) == "") {
			if err != io.EOF {
				s.err = err
			}
			return false
		}
		s.line++
		if codeStr = strings.TrimSpace(codeLine); codeStr != "" {
			break
		}
	}

	code, err := strconv.Atoi(codeStr)
	if err != nil {
		s.err = fmt.Errorf("line %d: invalid group code %q", s.line, codeStr)
		return false
	}

	// 2. 读取 Value 行
	valueLine, err := s.reader.ReadString('\n')
	if err != nil && (err != io.EOF || valueLine == "") {
		// Value 行缺失说明文件被截断
		s.err = fmt.Errorf("line %d: missing value for group code %d", s.line, code)
		return false
	}
	s.line++

	// 去掉行尾的换行符，但保留 Value 开头的空格（DXF 规范要求）
	value := strings.TrimRight(valueLine, "\r\n")

	s.LastTag = Tag{Code: code, Value: value}
	return true
}

// Done 读取已结束（EOF 或出错），LastTag 不会再变化
func (s *Scanner) Done() bool {
	return s.done
}

func (s *Scanner) Err() error {
	return s.err
}
