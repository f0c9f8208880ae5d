//
// hivemind - UHP Hive game engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2023-2025 Crystal Spider
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package uhp contains the UhpHandler data structure and functionality to
// handle the Universal Hive Protocol communication between a Hive user
// interface and the engine. Every command response is terminated by a
// single "ok" line; errors are reported with the "err" prefix and illegal
// moves with "invalidmove".
package uhp

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/crystal-spider/hivemind/internal/board"
	"github.com/crystal-spider/hivemind/internal/config"
	myLogging "github.com/crystal-spider/hivemind/internal/logging"
	"github.com/crystal-spider/hivemind/internal/search"
	. "github.com/crystal-spider/hivemind/internal/types"
	"github.com/crystal-spider/hivemind/internal/uhpInterface"
	"github.com/crystal-spider/hivemind/internal/version"
)

var out = message.NewPrinter(language.German)
var log *logging.Logger

// UhpHandler handles all communication with the Hive ui via UHP and
// controls options, board and search.
// Create an instance with NewUhpHandler()
type UhpHandler struct {
	InIo   *bufio.Scanner
	OutIo  *bufio.Writer
	uhpLog *logging.Logger

	myBoard *board.Board
	brains  [ColorLength]search.Brain
}

// ///////////////////////////////////////////////////////////
// Public
// ///////////////////////////////////////////////////////////

// NewUhpHandler creates a new UhpHandler instance.
// Input / Output io can be replaced by changing the instance's
// InIo and OutIo members.
//  Example:
// 		u.InIo = bufio.NewScanner(os.Stdin)
//		u.OutIo = bufio.NewWriter(os.Stdout)
func NewUhpHandler() *UhpHandler {
	if log == nil {
		log = myLogging.GetLog()
	}
	u := &UhpHandler{
		InIo:   bufio.NewScanner(os.Stdin),
		OutIo:  bufio.NewWriter(os.Stdout),
		uhpLog: myLogging.GetUhpLog(),
	}
	u.myBoard, _ = board.New("")
	u.rebuildBrains()
	var driver uhpInterface.UhpDriver = u
	for _, brain := range u.brains {
		if s, ok := brain.(*search.Search); ok {
			s.SetUhpHandler(driver)
		}
	}
	return u
}

// Loop prints the engine identification and processes commands from the
// input stream until the exit command is received.
func (u *UhpHandler) Loop() {
	u.sendIdentification()
	for u.InIo.Scan() {
		if u.handleReceivedCommand(u.InIo.Text()) {
			// exit command received
			return
		}
	}
}

// Command handles a single line of UHP protocol aka command.
// Returns the uhp response as string output.
// Mostly useful for debugging and unit testing.
func (u *UhpHandler) Command(cmd string) string {
	tmp := u.OutIo
	buffer := new(bytes.Buffer)
	u.OutIo = bufio.NewWriter(buffer)
	u.handleReceivedCommand(cmd)
	_ = u.OutIo.Flush()
	u.OutIo = tmp
	return buffer.String()
}

// SendInfoString sends an arbitrary diagnostic string to the UHP user
// interface.
func (u *UhpHandler) SendInfoString(info string) {
	u.send(out.Sprintf("err %s", info))
}

// ///////////////////////////////////////////////////////////
// Private
// ///////////////////////////////////////////////////////////

var regexWhiteSpace = regexp.MustCompile(`\s+`)

func (u *UhpHandler) handleReceivedCommand(cmd string) bool {
	cmd = strings.TrimSpace(cmd)
	if len(cmd) == 0 {
		return false
	}
	log.Debugf("Received command: %s", cmd)
	u.uhpLog.Infof("<< %s", cmd)
	tokens := regexWhiteSpace.Split(cmd, -1)
	switch tokens[0] {
	case "exit":
		return true
	case "info":
		u.infoCommand()
	case "help":
		u.helpCommand(tokens)
	case "options":
		u.optionsCommand(tokens)
	case "newgame":
		u.newGameCommand(cmd)
	case "validmoves":
		u.validMovesCommand()
	case "bestmove":
		u.bestMoveCommand(tokens)
	case "play":
		u.playCommand(tokens)
	case "pass":
		u.playTokens([]string{"play", PassMove})
	case "undo":
		u.undoCommand(tokens)
	default:
		u.sendError(out.Sprintf("Unknown command: %s", tokens[0]))
	}
	log.Debugf("Processed command: %s", cmd)
	return false
}

// sendIdentification prints the engine id line, the capability string
// and the ready marker. Sent on startup and by the info command.
func (u *UhpHandler) sendIdentification() {
	u.send("id HiveMind v" + version.Version())
	u.send("Mosquito;Ladybug;Pillbug")
	u.sendOk()
}

// command handler when the "info" cmd has been received
func (u *UhpHandler) infoCommand() {
	u.sendIdentification()
}

// command help texts, also used to validate help arguments
var helpTexts = map[string]string{
	"info":       "info\n  Displays the identifier string of the engine and its capabilities.",
	"help":       "help [command]\n  Displays the list of available commands or the help for one command.",
	"options":    "options [get OptionName | set OptionName Value]\n  Displays or changes the available engine options.",
	"newgame":    "newgame [GameString]\n  Starts a new game, optionally from the given GameString.",
	"validmoves": "validmoves\n  Displays every valid move in the current game, separated by ';'.",
	"bestmove":   "bestmove time HH:MM:SS | bestmove depth Depth\n  Searches for the best move under the given limit.",
	"play":       "play MoveString\n  Plays the given MoveString in the current game.",
	"pass":       "pass\n  Plays a passing move in the current game.",
	"undo":       "undo [amount]\n  Undoes the given amount of moves (default 1).",
	"exit":       "exit\n  Exits the engine.",
}

// order of the commands in the help listing
var helpOrder = []string{"info", "help", "options", "newgame", "validmoves", "bestmove", "play", "pass", "undo", "exit"}

func (u *UhpHandler) helpCommand(tokens []string) {
	if len(tokens) > 1 {
		if text, found := helpTexts[tokens[1]]; found {
			u.send(text)
			u.sendOk()
			return
		}
		u.sendError(out.Sprintf("Unknown command: %s", tokens[1]))
		return
	}
	u.send("Available commands:")
	for _, name := range helpOrder {
		u.send("  " + name)
	}
	u.sendOk()
}

// command handler when the "newgame" cmd has been received.
// Everything after the command word is the optional GameString.
func (u *UhpHandler) newGameCommand(cmd string) {
	gameString := strings.TrimSpace(strings.TrimPrefix(cmd, "newgame"))
	newBoard, err := board.New(gameString)
	if err != nil {
		u.sendBoardError(err)
		return
	}
	u.myBoard = newBoard
	for _, brain := range u.brains {
		brain.NewGame()
	}
	u.send(u.myBoard.GameString())
	u.sendOk()
}

func (u *UhpHandler) validMovesCommand() {
	if u.myBoard.GameOver() {
		u.sendBoardError(board.ErrGameOver)
		return
	}
	u.send(u.myBoard.ValidMovesString())
	u.sendOk()
}

func (u *UhpHandler) playCommand(tokens []string) {
	u.playTokens(tokens)
}

func (u *UhpHandler) playTokens(tokens []string) {
	if len(tokens) < 2 {
		u.sendError("Command 'play' is missing the MoveString")
		return
	}
	moveString := strings.Join(tokens[1:], " ")
	if err := u.myBoard.Play(moveString); err != nil {
		u.sendBoardError(err)
		return
	}
	u.send(u.myBoard.GameString())
	u.sendOk()
}

func (u *UhpHandler) undoCommand(tokens []string) {
	amount := 1
	if len(tokens) > 1 {
		var err error
		amount, err = strconv.Atoi(tokens[1])
		if err != nil || amount < 1 {
			u.sendError(out.Sprintf("Command 'undo' has an invalid amount '%s'", tokens[1]))
			return
		}
	}
	if err := u.myBoard.Undo(amount); err != nil {
		u.sendBoardError(err)
		return
	}
	u.send(u.myBoard.GameString())
	u.sendOk()
}

// command handler when the "bestmove" cmd has been received.
// Runs the search of the current player's strategy and prints the
// resulting MoveString.
func (u *UhpHandler) bestMoveCommand(tokens []string) {
	if u.myBoard.GameOver() {
		u.sendBoardError(board.ErrGameOver)
		return
	}
	limits, err := u.readSearchLimits(tokens)
	if err != nil {
		return
	}
	brain := u.brains[u.myBoard.CurrentPlayerColor()]
	result := brain.FindBestMove(u.myBoard, *limits)
	u.send(result.BestMoveString)
	u.sendOk()
}

// readSearchLimits parses "time HH:MM:SS" or "depth N" after bestmove.
// Without arguments the configured default depth applies.
func (u *UhpHandler) readSearchLimits(tokens []string) (*search.Limits, error) {
	limits := search.NewSearchLimits()
	if len(tokens) == 1 {
		return limits, nil
	}
	if len(tokens) < 3 {
		u.sendError(out.Sprintf("Command 'bestmove' is malformed: %s", strings.Join(tokens, " ")))
		return nil, errors.New("malformed bestmove")
	}
	switch tokens[1] {
	case "depth":
		depth, err := strconv.Atoi(tokens[2])
		if err != nil || depth < 1 {
			u.sendError(out.Sprintf("Command 'bestmove' has an invalid depth '%s'", tokens[2]))
			return nil, errors.New("malformed bestmove depth")
		}
		limits.MaxDepth = depth
	case "time":
		moveTime, err := parseTimeSpec(tokens[2])
		if err != nil {
			u.sendError(out.Sprintf("Command 'bestmove' has an invalid time '%s'", tokens[2]))
			return nil, err
		}
		limits.MoveTime = moveTime
		limits.TimeControl = true
	default:
		u.sendError(out.Sprintf("Command 'bestmove' has an invalid limit '%s'", tokens[1]))
		return nil, errors.New("malformed bestmove limit")
	}
	return limits, nil
}

var timeSpecRegex = regexp.MustCompile(`^(\d+):([0-5]?\d):([0-5]?\d)$`)

// parseTimeSpec parses the HH:MM:SS time format of the bestmove command.
func parseTimeSpec(spec string) (time.Duration, error) {
	match := timeSpecRegex.FindStringSubmatch(spec)
	if match == nil {
		return 0, fmt.Errorf("invalid time spec: %s", spec)
	}
	hours, _ := strconv.Atoi(match[1])
	minutes, _ := strconv.Atoi(match[2])
	seconds, _ := strconv.Atoi(match[3])
	return time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second, nil
}

// rebuildBrains creates the per color brains from the configured
// strategies.
func (u *UhpHandler) rebuildBrains() {
	strategyWhite, ok := search.ParseStrategy(config.Settings.Search.StrategyWhite)
	if !ok {
		strategyWhite = search.StrategyNegamax
	}
	strategyBlack, ok := search.ParseStrategy(config.Settings.Search.StrategyBlack)
	if !ok {
		strategyBlack = search.StrategyNegamax
	}
	u.brains[White] = search.NewBrain(strategyWhite)
	u.brains[Black] = search.NewBrain(strategyBlack)
}

// sendBoardError reports board errors with the protocol prefix: illegal
// moves with "invalidmove", everything else with "err".
func (u *UhpHandler) sendBoardError(err error) {
	var illegal *board.IllegalMoveError
	if errors.As(err, &illegal) {
		u.send(out.Sprintf("invalidmove %s", illegal.Error()))
		u.sendOk()
		return
	}
	u.sendError(err.Error())
}

func (u *UhpHandler) sendError(msg string) {
	log.Warning(msg)
	u.send(out.Sprintf("err %s", msg))
	u.sendOk()
}

func (u *UhpHandler) sendOk() {
	u.send("ok")
}

// sends any string to the UHP user interface
func (u *UhpHandler) send(s string) {
	u.uhpLog.Infof(">> %s", s)
	_, _ = u.OutIo.WriteString(s + "\n")
	_ = u.OutIo.Flush()
}
