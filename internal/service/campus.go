package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"campus-map/internal/building"
	"campus-map/internal/config"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// CampusService 依次运行配置的建筑演示场景
type CampusService struct {
	config *config.Config
	logger *zap.Logger
	out    io.Writer
}

// NewCampusService 创建演示服务，out 为报表输出
func NewCampusService(cfg *config.Config, logger *zap.Logger, out io.Writer) *CampusService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if out == nil {
		out = os.Stdout
	}
	return &CampusService{
		config: cfg,
		logger: logger,
		out:    out,
	}
}

// Run 按顺序运行所有场景
// 单个场景失败不影响后续场景，所有错误合并返回；ctx 取消后不再开始新场景
func (s *CampusService) Run(ctx context.Context) error {
	var errs error
	for _, name := range s.config.Campus.Scenarios {
		if err := ctx.Err(); err != nil {
			return multierr.Append(errs, err)
		}

		run, ok := s.scenario(name)
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("unknown scenario %q", name))
			continue
		}

		s.logger.Info("Running scenario", zap.String("scenario", name))
		if err := run(); err != nil {
			s.logger.Error("Scenario failed", zap.String("scenario", name), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("scenario %s: %w", name, err))
			continue
		}
		s.logger.Info("Scenario finished", zap.String("scenario", name))
	}
	return errs
}

func (s *CampusService) scenario(name string) (func() error, bool) {
	switch name {
	case config.ScenarioCafe:
		return s.runCafe, true
	case config.ScenarioHouse:
		return s.runHouse, true
	case config.ScenarioLibrary:
		return s.runLibrary, true
	default:
		return nil, false
	}
}

func (s *CampusService) options(bc config.BuildingConfig) building.Options {
	return building.Options{
		Name:          bc.Name,
		Address:       bc.Address,
		Floors:        bc.Floors,
		HasElevator:   bc.HasElevator,
		HasDiningRoom: bc.HasDiningRoom,
		Output:        s.out,
	}
}

// runCafe 卖一杯咖啡，查看库存，然后逐层走到顶楼
func (s *CampusService) runCafe() error {
	cafe := building.NewCafe(s.options(s.config.Campus.Cafe), s.logger)

	cafe.SellCoffee(16, 1, 1)
	cafe.PrintInventory()
	cafe.ShowOptions()

	cafe.Enter()
	for floor := 2; floor <= cafe.Floors(); floor++ {
		if err := cafe.GoToFloor(floor); err != nil {
			return err
		}
	}
	return nil
}

// runHouse 三人入住，一次失败的搬出和一次成功的搬出，然后上楼
func (s *CampusService) runHouse() error {
	house := building.NewHouse(s.options(s.config.Campus.House), s.logger)

	house.MoveIn("Grace")
	house.MoveIn("Kira")
	house.MoveIn("Fiadh")
	s.printf("Residents: [%s]\n", strings.Join(house.Residents(), ", "))

	house.MoveOut("Jordan")
	house.MoveOut("Grace")
	s.printf("Residents: [%s]\n", strings.Join(house.Residents(), ", "))
	s.printf("There are %d residents living at %s\n", house.NResidents(), house.Address())
	s.printf("%s\n", house)

	house.ShowOptions()

	house.Enter()
	return house.GoToFloor(min(2, house.Floors()))
}

// runLibrary 上架三本书，借出一本，再借一次同一本
func (s *CampusService) runLibrary() error {
	library := building.NewLibrary(s.options(s.config.Campus.Library), s.logger)

	library.AddTitle("Twilight")
	library.AddTitle("Macbeth")
	library.AddTitle("Little Women")
	library.PrintCollection()

	library.CheckOut("Little Women")
	library.PrintCollection()

	library.CheckOut("Little Women")
	library.ShowOptions()

	library.Enter()
	target := min(2, library.Floors())
	if library.HasElevator() {
		target = library.Floors()
	}
	return library.GoToFloor(target)
}

func (s *CampusService) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(s.out, format, args...); err != nil {
		s.logger.Error("Failed to write report", zap.Error(err))
	}
}
