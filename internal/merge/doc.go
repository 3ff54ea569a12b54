// Пакет merge — движок согласования записей stock.
//
// Решает три задачи в порядке применения:
//  1. исходящий дифф: из клиентского change-set остаются только реально
//     изменённые поля (Marketplace API трактует присланное поле как явную
//     запись, эхо неизменённых полей недопустимо);
//  2. входящее согласование: ответ Marketplace API перезаписывает
//     соответствующий под-документ кэша; для под-документов, опущенных в
//     ответе, выполняется рекурсивное слияние оригинала с отправленным
//     payload (скаляры и массивы атомарны, вложенные объекты — рекурсивно);
//  3. пересчёт производных колонок (цены с учётом НДС, lifecycle state).
//
// Только этот пакет изменяет запись stock; другие компоненты работают
// с его результатом.
package merge
